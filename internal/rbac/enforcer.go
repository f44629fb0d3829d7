package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin     = "ADMIN"
	RoleWarehouse = "WAREHOUSE"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*")
`

// policies are static: the system knows exactly two roles. Admin manages
// everything; warehouse staff run the operational day (runs + attendance)
// and read reference data.
var policies = [][]string{
	{RoleAdmin, "*", "*"},

	{RoleWarehouse, "courier", "read"},
	{RoleWarehouse, "seller", "read"},
	{RoleWarehouse, "destination", "read"},
	{RoleWarehouse, "paymentmethod", "read"},
	{RoleWarehouse, "delivery", "read"},
	{RoleWarehouse, "delivery", "create"},
	{RoleWarehouse, "delivery", "update"},
	{RoleWarehouse, "attendance", "read"},
	{RoleWarehouse, "attendance", "update"},
}

// NewEnforcer builds the casbin enforcer with the built-in model and policy.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := enforcer.AddPolicies(policies); err != nil {
		return nil, err
	}

	return enforcer, nil
}
