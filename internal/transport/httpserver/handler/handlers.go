package handler

import (
	admindomain "farm-ledger-go/internal/domain/admin"
	advisordomain "farm-ledger-go/internal/domain/advisor"
	analyticsdomain "farm-ledger-go/internal/domain/analytics"
	expensesdomain "farm-ledger-go/internal/domain/expenses"
	farmdomain "farm-ledger-go/internal/domain/farm"
	ledgerdomain "farm-ledger-go/internal/domain/ledger"
	userdomain "farm-ledger-go/internal/domain/user"
	"farm-ledger-go/internal/transport/httpserver/middleware"
	"farm-ledger-go/pkg/logger"
)

type Handlers struct {
	Users     *userdomain.Service
	Ledger    *ledgerdomain.Service
	Expenses  *expensesdomain.Service
	Farm      *farmdomain.Service
	Analytics *analyticsdomain.Service
	Admin     *admindomain.Service
	Advisor   *advisordomain.Service

	auth *middleware.JWTAuth
	log  logger.Logger
}

func New(
	users *userdomain.Service,
	ledger *ledgerdomain.Service,
	expenses *expensesdomain.Service,
	farm *farmdomain.Service,
	analytics *analyticsdomain.Service,
	admin *admindomain.Service,
	advisor *advisordomain.Service,
	auth *middleware.JWTAuth,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:     users,
		Ledger:    ledger,
		Expenses:  expenses,
		Farm:      farm,
		Analytics: analytics,
		Admin:     admin,
		Advisor:   advisor,
		auth:      auth,
		log:       log,
	}
}
