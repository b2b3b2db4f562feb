package commands

import (
	"context"
	"errors"
	"fmt"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/pkg/settings"
)

// SaveSettingsInput carries submitted integration values keyed by field.
type SaveSettingsInput struct {
	Values map[string]string `json:"values"`
	Locale string            `json:"locale,omitempty"`
	// Result receives the published notice when non-nil.
	Result *dashboard.Notice `json:"-"`
}

type settingsWriter interface {
	Save(ctx context.Context, values map[string]string) error
}

// SaveSettingsCommand validates and stores integration settings.
type SaveSettingsCommand struct {
	store     settingsWriter
	notices   notifier
	telemetry Telemetry
}

// NewSaveSettingsCommand creates the command.
func NewSaveSettingsCommand(store settingsWriter, notices notifier, telemetry Telemetry) *SaveSettingsCommand {
	return &SaveSettingsCommand{store: store, notices: notices, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SaveSettingsInput] = (*SaveSettingsCommand)(nil)

// Execute saves the values and announces "Settings saved!".
func (c *SaveSettingsCommand) Execute(ctx context.Context, msg SaveSettingsInput) error {
	if c.store == nil || c.notices == nil {
		return errors.New("save settings command requires store and notifier")
	}
	if len(msg.Values) == 0 {
		return fmt.Errorf("%w: no settings values submitted", settings.ErrInvalid)
	}
	if err := c.store.Save(ctx, msg.Values); err != nil {
		return err
	}
	message := c.notices.Translate(ctx, "notice.settings_saved", msg.Locale, "Settings saved!")
	notice, err := c.notices.Notify(ctx, dashboard.NoticeSuccess, message)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = notice
	}
	c.telemetry.Record(ctx, "dashboard.settings.save", map[string]any{
		"fields": len(msg.Values),
	})
	return nil
}
