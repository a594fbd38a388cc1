package api

import (
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	db "github.com/sunidhi090894/FoodShare-sub000/db/sqlc"
	"github.com/sunidhi090894/FoodShare-sub000/util"
)

// testCasbinModelDef 测试用 Casbin 模型
const testCasbinModelDef = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && r.act == p.act
`

// testCasbinPolicyDef 测试用策略，与 casbin/policy.csv 保持一致
const testCasbinPolicyDef = `
p, donor, /v1/offers, POST
p, donor, /v1/offers/:id/cancel, POST
p, donor, /v1/offers/:id/matches, GET
p, donor, /v1/requests/:id/approve, POST
p, donor, /v1/requests/:id/reject, POST
p, recipient, /v1/organizations, POST
p, recipient, /v1/organizations/me, PATCH
p, recipient, /v1/offers/:id/requests, POST
p, recipient, /v1/requests, GET
p, volunteer, /v1/deliveries/available, GET
p, volunteer, /v1/deliveries/mine, GET
p, volunteer, /v1/deliveries/:id/claim, POST
p, volunteer, /v1/deliveries/:id/status, POST
p, volunteer, /v1/deliveries/route/optimize, POST
p, admin, /v1/admin/stats, GET
p, admin, /v1/admin/organizations/:id/verify, POST
`

func initTestCasbin() error {
	enforcer, err := NewCasbinEnforcerFromString(testCasbinModelDef, testCasbinPolicyDef)
	if err != nil {
		return err
	}
	SetGlobalCasbinEnforcer(enforcer)
	return nil
}

func newTestServer(t *testing.T, store db.Store) *Server {
	config := util.Config{
		TokenSymmetricKey:    util.RandomString(32),
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
	}

	server, err := NewServer(config, store, nil)
	require.NoError(t, err)

	return server
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if err := initTestCasbin(); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
