package cli

import (
	"context"
	"strconv"
	"time"

	applog "budget/internal/log"
)

type Item struct {
	Key   string // action key
	Title string // text shown to the user
}

type Menu struct {
	Items []Item
}

// MainMenu is the menu shown after the guided setup.
var MainMenu = Menu{Items: []Item{
	{Key: "add_income", Title: "Add more income"},
	{Key: "add_expense", Title: "Add more expenses"},
	{Key: "list_all", Title: "View all transactions"},
	{Key: "list_month", Title: "View transactions by month"},
	{Key: "balance", Title: "Check balance"},
	{Key: "by_category", Title: "View spending by category"},
	{Key: "exit", Title: "Exit"},
}}

// Lookup maps a 1-based choice such as "3" to its item.
func (m Menu) Lookup(choice string) (Item, bool) {
	for i, it := range m.Items {
		if choice == strconv.Itoa(i+1) {
			return it, true
		}
	}
	return Item{}, false
}

func (m Menu) Draw(r *Renderer) {
	r.Println("\nWhat would you like to do next?")
	for i, it := range m.Items {
		r.Printf("%d. %s\n", i+1, it.Title)
	}
}

type Command struct {
	Key string
	Run func(ctx context.Context) error
}

// WithTiming logs how long each command took at debug level.
func WithTiming(logger *applog.Logger, c Command) Command {
	return Command{
		Key: c.Key,
		Run: func(ctx context.Context) error {
			start := time.Now()
			err := c.Run(ctx)
			status := "OK"
			if err != nil {
				status = "ERR"
			}
			logger.DebugContext(ctx, "Command finished",
				"command", c.Key,
				"status", status,
				"duration", time.Since(start).Round(time.Millisecond))
			return err
		},
	}
}
