package taskbot

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	corebootstrap "github.com/m3rciful/volunteerbot/core/bootstrap"
	coretelegram "github.com/m3rciful/volunteerbot/core/telegram"
	"github.com/m3rciful/volunteerbot/core/telegram/commands"
	"github.com/m3rciful/volunteerbot/core/telegram/router"
	"github.com/m3rciful/volunteerbot/tasks"
)

// App is the assembled task bot.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	service  *tasks.Service
	handlers *Handlers
}

// Bootstrap initializes the logger, database, and migrations, then wires
// the task handlers.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("taskbot: nil config provided")
	}

	res, err := corebootstrap.Run(corebootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	service := tasks.NewService(tasks.NewStore(res.DB))

	return &App{
		cfg:      cfg,
		db:       res.DB,
		service:  service,
		handlers: NewHandlers(service),
	}, nil
}

// TelegramRunOptions assembles registry, routes, and middleware for RunTelegram.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/alltasks", commands.Command{
		Handler:     a.handlers.AllTasks,
		Description: "View all tasks",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handlers.Help,
		Description: "How to use this bot",
	})

	if err := reg.RegisterCallback(cbTake, a.handlers.Take); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(cbDone, a.handlers.Done); err != nil {
		return coretelegram.RunOptions{}, err
	}
	reg.SetTextFallback(a.handlers.IdleHint)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoute(nil, reg, router.TextOptions{}))

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
