// Package cli defines the promo-event command tree.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/promo-event/internal/config"
	"github.com/deppfellow/promo-event/internal/lib/backend"
	"github.com/deppfellow/promo-event/internal/logger"
	"github.com/deppfellow/promo-event/internal/repository"
	"github.com/deppfellow/promo-event/internal/service"
	"github.com/deppfellow/promo-event/internal/validation"
)

type rootOptions struct {
	backendURL string
	logLevel   string

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd returns the promo-event command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "promo-event",
		Short:         "Promotional event gateway and backend client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.backendURL, "backend-url", "", "event backend base URL (overrides PROMO_BACKEND__BASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newServeCmd(opts),
		newEventCmd(opts),
		newRewardsCmd(opts),
		newFortuneCmd(opts),
		newSubmitCmd(opts),
	)

	return cmd
}

func (o *rootOptions) load(logOut io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if o.backendURL != "" {
		cfg.Backend.BaseURL = o.backendURL
	}
	if o.logLevel != "" {
		cfg.Observability.Logging.Level = o.logLevel
		if err := cfg.Observability.Validate(); err != nil {
			return errors.Wrap(err, "invalid --log-level")
		}
	}

	o.cfg = cfg
	o.logger = logger.New(logOut, cfg.Observability, nil)
	return nil
}

// eventService builds the data access and validation stack without the
// HTTP gateway, for one-shot commands.
func (o *rootOptions) eventService() (*service.EventService, error) {
	client, err := backend.New(o.cfg.Backend, &o.logger,
		backend.WithSlowThreshold(o.cfg.Observability.Logging.SlowRequestThreshold),
	)
	if err != nil {
		return nil, err
	}

	repo := repository.NewEventRepository(client)
	v := validation.New(validation.MessagesFor(o.cfg.Validation.Locale))
	return service.NewEventService(repo, v, &o.logger), nil
}
