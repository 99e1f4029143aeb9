package requestbot

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	corebootstrap "github.com/m3rciful/volunteerbot/core/bootstrap"
	coretelegram "github.com/m3rciful/volunteerbot/core/telegram"
	"github.com/m3rciful/volunteerbot/core/telegram/commands"
	"github.com/m3rciful/volunteerbot/core/telegram/router"
	"github.com/m3rciful/volunteerbot/dialog"
	"github.com/m3rciful/volunteerbot/tasks"
)

// App is the assembled request bot: storage, dialog machine, and handlers.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	service  *tasks.Service
	handlers *Handlers
}

// Bootstrap initializes the logger, database, and migrations, then wires
// the dialog machine over the task service.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("requestbot: nil config provided")
	}

	res, err := corebootstrap.Run(corebootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	service := tasks.NewService(tasks.NewStore(res.DB))
	machine := dialog.NewMachine(dialog.NewMemoryTracker(), service)

	return &App{
		cfg:      cfg,
		db:       res.DB,
		service:  service,
		handlers: NewHandlers(machine),
	}, nil
}

// TelegramRunOptions assembles registry, routes, and middleware for RunTelegram.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/newtask", commands.Command{
		Handler:     a.handlers.NewTask,
		Description: "Create new task",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handlers.Help,
		Description: "How to use this bot",
	})

	for _, key := range []string{cbCancel, cbSelect, cbCreate} {
		if err := reg.RegisterCallback(key, a.handlers.OnAction); err != nil {
			return coretelegram.RunOptions{}, err
		}
	}
	reg.SetTextFallback(a.handlers.IdleHint)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoute(a.handlers, reg, router.TextOptions{}))

	return coretelegram.RunOptions{
		Config:      &a.cfg.Core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(&a.cfg.Core, nil),
		Routes:      routes,
		OnStop: func(_ context.Context, _ coretelegram.Runtime) error {
			return a.db.Close()
		},
	}, nil
}
