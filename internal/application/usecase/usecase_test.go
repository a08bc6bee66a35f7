package usecase_test

import (
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
)

func as(role rbac.Role) session.Session {
	return session.New("u-"+string(role), string(role)+"@agrilconnect.in", role)
}
