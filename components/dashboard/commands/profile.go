package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/hadiant/go-admin-dashboard/components/dashboard"
	"github.com/hadiant/go-admin-dashboard/pkg/settings"
)

// UpdateProfileInput carries the admin profile form.
type UpdateProfileInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Locale   string `json:"locale,omitempty"`
	// Result receives the published notice when non-nil.
	Result *dashboard.Notice `json:"-"`
}

type profileWriter interface {
	UpdateProfile(ctx context.Context, profile settings.Profile) error
}

// UpdateProfileCommand validates and stores the admin profile.
type UpdateProfileCommand struct {
	store     profileWriter
	notices   notifier
	telemetry Telemetry
}

// NewUpdateProfileCommand creates the command.
func NewUpdateProfileCommand(store profileWriter, notices notifier, telemetry Telemetry) *UpdateProfileCommand {
	return &UpdateProfileCommand{store: store, notices: notices, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[UpdateProfileInput] = (*UpdateProfileCommand)(nil)

// Execute stores the profile and announces "Profile updated!".
func (c *UpdateProfileCommand) Execute(ctx context.Context, msg UpdateProfileInput) error {
	if c.store == nil || c.notices == nil {
		return errors.New("update profile command requires store and notifier")
	}
	profile := settings.Profile{FullName: msg.FullName, Email: msg.Email}
	if err := c.store.UpdateProfile(ctx, profile); err != nil {
		return err
	}
	message := c.notices.Translate(ctx, "notice.profile_updated", msg.Locale, "Profile updated!")
	notice, err := c.notices.Notify(ctx, dashboard.NoticeSuccess, message)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = notice
	}
	c.telemetry.Record(ctx, "dashboard.profile.update", nil)
	return nil
}
