package val

import (
	"fmt"
	"regexp"
)

var phoneRegex = regexp.MustCompile(`^1\d{10}$`)

// ValidatePhone 验证中国大陆手机号格式（1开头的11位数字）
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return fmt.Errorf("invalid phone number: must be 11 digits starting with 1")
	}
	return nil
}

// ValidateRole 验证平台角色
func ValidateRole(role string) error {
	switch role {
	case "donor", "recipient", "volunteer", "admin":
		return nil
	}
	return fmt.Errorf("unsupported role: %s", role)
}

// ValidateCoordinates 验证经纬度范围
func ValidateCoordinates(longitude, latitude float64) error {
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	return nil
}
