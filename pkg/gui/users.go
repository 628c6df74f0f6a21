package gui

import (
	"context"
	"fmt"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/roster"
)

// UsersMenuOption configures a UsersMenu.
type UsersMenuOption func(*usersMenuConfig)

type usersMenuConfig struct {
	filter   string
	menuOpts []MenuOption
}

// WithUserFilter keeps only users whose names fuzzily match pattern.
func WithUserFilter(pattern string) UsersMenuOption {
	return func(c *usersMenuConfig) { c.filter = pattern }
}

// WithUsersMenuOptions passes options to the underlying Menu.
func WithUsersMenuOptions(opts ...MenuOption) UsersMenuOption {
	return func(c *usersMenuConfig) { c.menuOpts = append(c.menuOpts, opts...) }
}

// UsersMenu is a Menu listing the roster, one item per user. Items carry
// the user id and the roster.User as data.
type UsersMenu struct {
	*Menu
}

func (um *UsersMenu) Base() *Element {
	if um == nil {
		return nil
	}
	return um.Menu.Base()
}

// NewUsersMenu loads the roster from src and lists every user except the
// one with excludeID. On a load error the menu is still returned, holding
// whatever was loaded, together with the error.
func NewUsersMenu(ctx context.Context, src roster.Source, host EventHost, title string, callback Callback, excludeID int64, opts ...UsersMenuOption) (*UsersMenu, error) {
	var cfg usersMenuConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	um := &UsersMenu{Menu: NewMenu(host, title, callback, cfg.menuOpts...)}

	users, err := src.Users(ctx)
	users = roster.Filter(roster.Exclude(users, excludeID), cfg.filter)
	for _, u := range users {
		um.AddItem(u.Name, int(u.ID), u)
	}
	if err != nil {
		return um, fmt.Errorf("users menu: %w", err)
	}
	return um, nil
}
