package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/deppfellow/promo-event/internal/lib/utils"
	"github.com/deppfellow/promo-event/internal/service"
)

// fetchCmd builds a command that performs one read and prints the result.
func fetchCmd(opts *rootOptions, use, short string, fetch func(ctx context.Context, svc *service.EventService) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.eventService()
			if err != nil {
				return err
			}

			result, err := fetch(cmd.Context(), svc)
			if err != nil {
				return err
			}

			return utils.PrintJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newEventCmd(opts *rootOptions) *cobra.Command {
	return fetchCmd(opts, "event", "Print the event metadata", func(ctx context.Context, svc *service.EventService) (any, error) {
		return svc.EventInfo(ctx)
	})
}

func newRewardsCmd(opts *rootOptions) *cobra.Command {
	return fetchCmd(opts, "rewards", "Print the reward list", func(ctx context.Context, svc *service.EventService) (any, error) {
		return svc.Rewards(ctx)
	})
}

func newFortuneCmd(opts *rootOptions) *cobra.Command {
	return fetchCmd(opts, "fortune", "Print the fortune wheel items", func(ctx context.Context, svc *service.EventService) (any, error) {
		return svc.FortuneList(ctx)
	})
}
