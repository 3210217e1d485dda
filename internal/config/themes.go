package config

import "context"

// ForwardThemes sends the theme of each reloaded config to themes when it
// differs from the last one sent. current is the theme already applied. It
// returns when ctx ends or changes is closed.
func ForwardThemes(ctx context.Context, changes <-chan Config, themes chan<- string, current string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cfg, ok := <-changes:
			if !ok {
				return nil
			}
			if cfg.Theme == "" || cfg.Theme == current {
				continue
			}
			select {
			case themes <- cfg.Theme:
				current = cfg.Theme
			case <-ctx.Done():
				return nil
			}
		}
	}
}
