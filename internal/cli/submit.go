package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deppfellow/promo-event/internal/lib/utils"
	"github.com/deppfellow/promo-event/internal/model"
	"github.com/deppfellow/promo-event/internal/validation"
)

// ErrInvalidForm is returned by submit when local validation fails.
var ErrInvalidForm = errors.New("form is invalid")

func newSubmitCmd(opts *rootOptions) *cobra.Command {
	var info model.UserInfo

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate the participation form and submit it",
		Long: "Validates every field locally. When a field is invalid the per-field\n" +
			"messages are printed and nothing is sent; otherwise the form is posted\n" +
			"once and the backend's echo is printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.eventService()
			if err != nil {
				return err
			}

			echoed, err := svc.Submit(cmd.Context(), info)
			if err != nil {
				var rejected *validation.SubmissionError
				if errors.As(err, &rejected) {
					if perr := utils.PrintJSON(cmd.OutOrStdout(), rejected.Fields); perr != nil {
						return perr
					}
					return ErrInvalidForm
				}
				return err
			}

			return utils.PrintJSON(cmd.OutOrStdout(), echoed)
		},
	}

	cmd.Flags().StringVar(&info.Name, "name", "", "participant name")
	cmd.Flags().StringVar(&info.Phone, "phone", "", "mobile number, 010-1234-5678")
	cmd.Flags().StringVar(&info.Email, "email", "", "email address")
	cmd.Flags().BoolVar(&info.AgreedTerms, "agree-terms", false, "agree to the event terms")

	return cmd
}
