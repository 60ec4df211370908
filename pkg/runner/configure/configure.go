// Package configure prompts for the wiki connection settings and
// persists them to the config file.
package configure

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/daybook/pkg/store"
)

type Configure struct {
	// Defaults shown in the prompts, usually the current config.
	Config store.Config
}

func (n *Configure) Do(ctx context.Context) error {
	var base, user string
	if n.Config != nil {
		base = n.Config.BaseURL()
		user = n.Config.User()
	}

	basePrompt := promptui.Prompt{
		Label:   "Wiki base URL",
		Default: base,
		Validate: func(s string) error {
			u, err := url.Parse(strings.TrimSpace(s))
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("need a full http(s) URL")
			}
			return nil
		},
	}
	baseURL, err := basePrompt.Run()
	if err != nil {
		return err
	}

	userPrompt := promptui.Prompt{
		Label:   "User (empty for no auth)",
		Default: user,
	}
	username, err := userPrompt.Run()
	if err != nil {
		return err
	}

	password := ""
	if username != "" {
		passPrompt := promptui.Prompt{
			Label: "Password",
			Mask:  '*',
		}
		if password, err = passPrompt.Run(); err != nil {
			return err
		}
	}

	if err := store.SaveConfig(strings.TrimSuffix(strings.TrimSpace(baseURL), "/"), username, password); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Println("Configuration saved.")
	return nil
}
