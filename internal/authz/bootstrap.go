package authz

import (
	"github.com/velora-shop/velora/internal/constants"
)

// Policy is one seeded route rule.
type Policy struct {
	Role   string
	Object string
	Action string
}

// BuiltinPolicies is the seeded role matrix. Admins hold every admin
// route; shoppers hold none of them.
func BuiltinPolicies() []Policy {
	return []Policy{
		{Role: constants.RoleAdmin, Object: "/api/v1/admin/*", Action: "*"},
	}
}

// Bootstrap seeds the builtin policies. Seeding is idempotent: casbin
// ignores policies that already exist.
func (s *Service) Bootstrap() error {
	for _, policy := range BuiltinPolicies() {
		if err := s.GrantRolePolicy(policy.Role, policy.Object, policy.Action); err != nil {
			return err
		}
	}
	return nil
}
