package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sunidhi090894/FoodShare-sub000/val"
)

// registerCustomValidators 注册自定义验证器
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// 注册手机号验证器
		v.RegisterValidation("validPhone", validPhone)
		// 注册角色验证器
		v.RegisterValidation("validRole", validRole)
	}
}

// validPhone 验证中国大陆手机号格式
var validPhone validator.Func = func(fl validator.FieldLevel) bool {
	phone, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidatePhone(phone) == nil
}

// validRole 验证平台角色
var validRole validator.Func = func(fl validator.FieldLevel) bool {
	role, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return val.ValidateRole(role) == nil
}
