package cli

import (
	"fmt"
	"os"

	"github.com/wfahy/lifeops/internal/models"
)

type InitCmd struct {
	Force   bool   `help:"Delete existing data before initializing."`
	Profile string `help:"Create and activate a profile straight away."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("closing existing store: %w", err)
		}
		if err := os.RemoveAll(ctx.DataDir); err != nil {
			return fmt.Errorf("removing existing data: %w", err)
		}
		fmt.Printf("Deleted existing data at: %s\n", ctx.DataDir)
		if err := ctx.Store.Init(); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized lifeops storage at: %s\n", ctx.Store.Path())

	if c.Profile != "" {
		profile := models.Profile{Name: c.Profile}.Normalize()
		ctx.Store.SaveProfiles(append(ctx.Store.Profiles(), profile))
		ctx.Store.SetCurrentProfile(profile)
		fmt.Printf("Created and activated profile: %s\n", profile.Name)
	}
	return nil
}
