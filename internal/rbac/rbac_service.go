package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// Kebijakan statis: dua role tetap, tidak ada policy store dinamis
var policies = [][]string{
	{RoleAdmin, "employee", "create"},
	{RoleAdmin, "employee", "read"},
	{RoleAdmin, "employee", "update"},
	{RoleAdmin, "attendance", "create"},
	{RoleAdmin, "attendance", "read"},
	{RoleAdmin, "attendance", "update"},
	{RoleAdmin, "editlog", "read"},
	{RoleAdmin, "request", "read"},
	{RoleAdmin, "request", "resolve"},
	{RoleAdmin, "tbt_image", "create"},
	{RoleAdmin, "tbt_image", "read"},
	{RoleAdmin, "tbt_image", "delete"},
	{RoleAdmin, "report", "read"},

	{RoleEmployee, "attendance", "read_own"},
	{RoleEmployee, "request", "create"},
	{RoleEmployee, "request", "read_own"},
	{RoleEmployee, "tbt_image", "read"},
	{RoleEmployee, "report", "read_own"},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
