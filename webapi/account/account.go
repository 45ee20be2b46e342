// Package account exposes the account service over HTTP.
package account

import (
	domainaccount "github.com/fintech-ro/bancar/pkg/domain/account"
	accountsvc "github.com/fintech-ro/bancar/pkg/service/account"
	"github.com/fintech-ro/bancar/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the account endpoints:
//
//   - POST   /account                    : open a new account
//   - GET    /account/:id/balance        : current balance snapshot
//   - POST   /account/:id/deposit        : credit funds
//   - POST   /account/:id/withdraw       : debit funds (daily limit applies)
//   - POST   /account/:id/transfer       : threshold-checked transfer
//   - POST   /account/:id/transfer/fx    : cross-currency RON/EUR transfer
//   - POST   /account/:id/convert        : pure RON/EUR conversion
//   - POST   /account/:id/interest       : apply an interest amount
//   - GET    /account/:id/interest       : project interest over ?days=N
//   - GET    /account/:id/report         : plain-text account report
//   - GET    /account/:id/transactions   : history, optional ?kind= filter
//   - POST   /day/advance                : reset all daily withdrawal windows
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/account", OpenAccount(svc))
	app.Get("/account/:id/balance", GetBalance(svc))
	app.Post("/account/:id/deposit", Deposit(svc))
	app.Post("/account/:id/withdraw", Withdraw(svc))
	app.Post("/account/:id/transfer", Transfer(svc))
	app.Post("/account/:id/transfer/fx", TransferFx(svc))
	app.Post("/account/:id/convert", Convert(svc))
	app.Post("/account/:id/interest", ApplyInterest(svc))
	app.Get("/account/:id/interest", ProjectInterest(svc))
	app.Get("/account/:id/report", Report(svc))
	app.Get("/account/:id/transactions", Transactions(svc))
	app.Post("/day/advance", AdvanceDay(svc))
}

func parseAccountID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, common.ErrorResponseJSON(c, fiber.StatusBadRequest,
			"Invalid account ID", "account ID must be a valid UUID")
	}
	return id, nil
}

// OpenAccount creates a new account with an optional opening balance.
func OpenAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := &OpenAccountRequest{}
		if len(c.Body()) > 0 {
			var err error
			input, err = common.BindAndValidate[OpenAccountRequest](c)
			if input == nil {
				return err
			}
		}
		snap, err := svc.Open(input.InitialBalance)
		if err != nil {
			log.Errorf("Failed to open account: %v", err)
			return common.DomainErrorJSON(c, "Failed to open account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account opened", snap)
	}
}

// GetBalance returns the account snapshot.
func GetBalance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		snap, err := svc.Balance(id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to fetch balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", snap)
	}
}

// Deposit credits funds into the account.
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		snap, err := svc.Deposit(id, input.Amount)
		if err != nil {
			log.Errorf("Failed to deposit: %v", err)
			return common.DomainErrorJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", snap)
	}
}

// Withdraw debits funds from the account, subject to the daily limit.
func Withdraw(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		snap, err := svc.Withdraw(id, input.Amount)
		if err != nil {
			log.Errorf("Failed to withdraw: %v", err)
			return common.DomainErrorJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", snap)
	}
}

// Transfer performs the threshold-checked transfer to another account.
func Transfer(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		destID, err := uuid.Parse(input.DestinationID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid destination ID", "destination ID must be a valid UUID")
		}
		snap, err := svc.Transfer(id, destID, input.Amount)
		if err != nil {
			log.Errorf("Failed to transfer: %v", err)
			return common.DomainErrorJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", snap)
	}
}

// TransferFx performs a cross-currency RON/EUR transfer.
func TransferFx(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[FxTransferRequest](c)
		if input == nil {
			return err
		}
		destID, err := uuid.Parse(input.DestinationID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid destination ID", "destination ID must be a valid UUID")
		}
		var snap accountsvc.Snapshot
		switch input.Direction {
		case "ron-to-eur":
			snap, err = svc.TransferRonToEur(id, destID, input.Amount)
		case "eur-to-ron":
			snap, err = svc.TransferEurToRon(id, destID, input.Amount)
		}
		if err != nil {
			log.Errorf("Failed to transfer %s: %v", input.Direction, err)
			return common.DomainErrorJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", snap)
	}
}

// Convert converts between RON and EUR without moving funds.
func Convert(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[ConvertRequest](c)
		if input == nil {
			return err
		}
		var converted float64
		switch input.Direction {
		case "ron-to-eur":
			converted, err = svc.ConvertRonToEur(id, input.Amount)
		case "eur-to-ron":
			converted, err = svc.ConvertEurToRon(id, input.Amount)
		}
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to convert", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversion successful", ConversionResponse{
			Amount:    input.Amount,
			Converted: converted,
			Direction: input.Direction,
		})
	}
}

// ApplyInterest credits a caller-computed interest amount.
func ApplyInterest(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		snap, err := svc.ApplyInterest(id, input.Amount)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to apply interest", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Interest applied", snap)
	}
}

// ProjectInterest projects interest over ?days=N (default 365).
func ProjectInterest(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		days := c.QueryInt("days", 365)
		if days < 0 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid days", "days must not be negative")
		}
		projected, err := svc.ProjectInterest(id, days)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to project interest", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Interest projected", InterestResponse{
			Days:      days,
			Projected: projected,
		})
	}
}

// Report renders the plain-text account report.
func Report(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		report, err := svc.Report(id)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to generate report", err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(fiber.StatusOK).SendString(report)
	}
}

// Transactions lists the account history, optionally filtered by ?kind=.
func Transactions(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseAccountID(c)
		if err != nil {
			return err
		}
		var kind *domainaccount.TransactionKind
		if name := c.Query("kind"); name != "" {
			parsed, err := domainaccount.ParseTransactionKind(name)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
					"Invalid transaction kind", err.Error())
			}
			kind = &parsed
		}
		txs, err := svc.Transactions(id, kind)
		if err != nil {
			return common.DomainErrorJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", txs)
	}
}

// AdvanceDay resets the daily withdrawal window on every account.
func AdvanceDay(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc.AdvanceDay()
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Day advanced", nil)
	}
}
