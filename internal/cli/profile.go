package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/wfahy/lifeops/internal/models"
	"github.com/wfahy/lifeops/internal/validation"
)

type ProfileCmd struct {
	Create ProfileCreateCmd `cmd:"" help:"Create a profile."`
	List   ProfileListCmd   `cmd:"" help:"List profiles."`
	Login  ProfileLoginCmd  `cmd:"" help:"Switch to a profile."`
	Logout ProfileLogoutCmd `cmd:"" help:"Clear the active profile."`
	Delete ProfileDeleteCmd `cmd:"" help:"Delete a profile."`
}

type ProfileCreateCmd struct {
	Name string `arg:"" help:"Profile name."`
	PIN  string `help:"Optional 4-digit PIN."`
}

func (c *ProfileCreateCmd) Run(ctx *Context) error {
	if r := validation.Profile(c.Name, c.PIN); !r.Ok() {
		return r.Err()
	}

	name := strings.TrimSpace(c.Name)
	profiles := ctx.Store.Profiles()
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return fmt.Errorf("a profile named %q already exists", p.Name)
		}
	}

	profile := models.Profile{
		ID:        models.NewID(),
		Name:      name,
		PIN:       c.PIN,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	profiles = append(profiles, profile)
	ctx.Store.SaveProfiles(profiles)

	// Creating a profile logs straight into it.
	ctx.Store.SetCurrentProfile(profile)

	fmt.Printf("Created profile: %s (now active)\n", profile.Name)
	return nil
}

type ProfileListCmd struct{}

func (c *ProfileListCmd) Run(ctx *Context) error {
	profiles := ctx.Store.Profiles()
	if len(profiles) == 0 {
		fmt.Println("No profiles yet. Data is stored under the shared Guest space.")
		return nil
	}

	cur, _ := ctx.Store.CurrentProfile()
	for _, p := range profiles {
		marker := " "
		if p.ID == cur.ID {
			marker = "*"
		}
		locked := ""
		if p.PIN != "" {
			locked = " (PIN)"
		}
		fmt.Printf("%s %s%s\n", marker, p.Name, locked)
	}
	return nil
}

type ProfileLoginCmd struct {
	Name string `arg:"" help:"Profile name."`
	PIN  string `help:"PIN, if the profile has one (prompted when omitted)."`
}

func (c *ProfileLoginCmd) Run(ctx *Context) error {
	var target *models.Profile
	for _, p := range ctx.Store.Profiles() {
		if strings.EqualFold(p.Name, strings.TrimSpace(c.Name)) {
			found := p
			target = &found
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no profile named %q", c.Name)
	}

	if target.PIN != "" && c.PIN == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title(fmt.Sprintf("PIN for %s", target.Name)).EchoMode(huh.EchoModePassword).Value(&c.PIN),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}
	if !target.CheckPIN(c.PIN) {
		return fmt.Errorf("wrong PIN for %s", target.Name)
	}

	ctx.Store.SetCurrentProfile(*target)
	fmt.Printf("Switched to profile: %s\n", target.Name)
	return nil
}

type ProfileLogoutCmd struct{}

func (c *ProfileLogoutCmd) Run(ctx *Context) error {
	ctx.Store.ClearCurrentProfile()
	fmt.Println("Logged out. Back to the shared Guest space.")
	return nil
}

type ProfileDeleteCmd struct {
	Name string `arg:"" help:"Profile name to delete."`
	Yes  bool   `short:"y" help:"Skip confirmation."`
}

func (c *ProfileDeleteCmd) Run(ctx *Context) error {
	profiles := ctx.Store.Profiles()
	idx := -1
	for i, p := range profiles {
		if strings.EqualFold(p.Name, strings.TrimSpace(c.Name)) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("no profile named %q", c.Name)
	}

	if !c.Yes && !Confirm(fmt.Sprintf("Delete profile %q? Its tasks stay on disk but become unreachable.", profiles[idx].Name)) {
		fmt.Println("Cancelled.")
		return nil
	}

	deleted := profiles[idx]
	profiles = append(profiles[:idx], profiles[idx+1:]...)
	ctx.Store.SaveProfiles(profiles)

	// Logging out a deleted profile avoids a dangling pointer record.
	if cur, ok := ctx.Store.CurrentProfile(); ok && cur.ID == deleted.ID {
		ctx.Store.ClearCurrentProfile()
	}
	fmt.Printf("Deleted profile: %s\n", deleted.Name)
	return nil
}
