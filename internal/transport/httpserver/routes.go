package httpserver

import (
	"net/http"
	"time"

	"farm-ledger-go/internal/transport/httpserver/handler"
	authmw "farm-ledger-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handlers *handler.Handlers, auth *authmw.JWTAuth, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(authmw.NewCORS(allowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Post("/auth/register", handlers.Register)
		r.Post("/auth/login", handlers.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/bills", handlers.ListBills)
			r.Post("/bills", handlers.CreateBill)
			r.Post("/bills/items", handlers.AddBillItem)
			r.Delete("/bills/{id}", handlers.DeleteBill)
			r.Get("/fertilizer-categories", handlers.ListFertilizerCategories)

			r.Get("/expenses", handlers.ListExpenses)
			r.Post("/expenses", handlers.CreateExpense)
			r.Post("/expenses/bulk", handlers.BulkCreateExpenses)
			r.Delete("/expenses/{id}", handlers.DeleteExpense)
			r.Get("/expense-categories", handlers.ListExpenseCategories)

			r.Get("/suppliers", handlers.ListSuppliers)
			r.Post("/suppliers", handlers.CreateSupplier)
			r.Get("/fields", handlers.ListFields)
			r.Post("/fields", handlers.CreateField)

			r.Get("/dashboard", handlers.Dashboard)
			r.Get("/dashboard/monthly", handlers.MonthlyTotals)

			r.Get("/export", handlers.ExportCSV)
			r.Post("/import", handlers.ImportCSV)
			r.Get("/sample-csv", handlers.SampleCSV)

			r.Post("/advisor/chat", handlers.AdvisorChat)
			r.Get("/advisor/history", handlers.AdvisorHistory)
			r.Post("/advisor/clear", handlers.AdvisorClear)
			r.Post("/advisor/analyze", handlers.AdvisorAnalyze)
			r.Post("/advisor/report", handlers.AdvisorReport)
			r.Post("/advisor/forecast", handlers.AdvisorForecast)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)

				r.Get("/admin/users", handlers.AdminOverview)
				r.Get("/admin/users/{id}", handlers.AdminUserDetail)
				r.Post("/admin/users/{id}/toggle", handlers.AdminToggleUser)
				r.Delete("/admin/users/{id}", handlers.AdminDeleteUser)
			})
		})
	})

	return r
}
