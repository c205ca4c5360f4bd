package notify

import (
	"context"
	"fmt"
	"strings"

	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/schemas"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SendAchievementEmail notifies a user about achievements they just unlocked.
// Callers should honor the user's notification preferences before calling.
func SendAchievementEmail(sesCli *ses.Client, ctx context.Context, user *schemas.User, achievements []schemas.Achievement) error {

	if len(achievements) == 0 {
		return nil
	}

	var rows strings.Builder
	for _, a := range achievements {
		rows.WriteString(fmt.Sprintf(`
						<div style="padding-top: 16px;">
							<span style="font-size: 24px;">%s</span>
							<span style="color: #FFF; font-size: 18px; font-weight: bold; padding-left: 8px;">%s</span>
							<div style="padding-top: 4px; font-size: 14px; color: #A1A1AA;">%s</div>
						</div>`, a.Icon, a.Name, a.Description))
	}

	subject := fmt.Sprintf("You unlocked %s!", achievements[0].Name)
	if len(achievements) > 1 {
		subject = fmt.Sprintf("You unlocked %d new achievements!", len(achievements))
	}

	html := fmt.Sprintf(`
		<!DOCTYPE html>
		<html lang="en">
		<head>
			<meta charset="UTF-8" />
		</head>
		<body style="margin: 0; padding: 0; background-color: #14532d; font-family: sans-serif;">
			<table width="100%%" cellspacing="0" cellpadding="0">
				<tr>
					<td align="center" style="padding: 40px 20px;">
						<table width="600" style="background-color: #166534; border-radius: 8px;">
							<tr>
								<td valign="top" style="padding: 32px;">
									<div style="color: #FFF; font-size: 24px; font-weight: bold;">Congratulations, %s!</div>
									<div style="padding-top: 12px; font-size: 16px; color: #FFF;">
										Your eco actions just earned you something new:
									</div>
									%s
									<div style="padding-top: 24px;">
										<a href="%s/achievements" style="
											background-color: #22C55E;
											color: #FFFFFF;
											text-decoration: none;
											padding: 12px 24px;
											border-radius: 6px;
											display: inline-block;
											font-weight: bold;
										">
											View achievements
										</a>
									</div>
									<div style="font-size: 12px; color: #FFF; padding-top: 24px;">© 2026 EcoTrack</div>
								</td>
							</tr>
						</table>
					</td>
				</tr>
			</table>
		</body>
		</html>`, user.Username, rows.String(), config.ORIGIN)

	emailInput := &ses.SendEmailInput{
		Source: aws.String(config.ENV.SES_SENDER),
		Destination: &types.Destination{
			ToAddresses: []string{user.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(html)},
			},
		},
	}

	_, err := sesCli.SendEmail(ctx, emailInput)
	if err != nil {
		return fmt.Errorf("in SendAchievementEmail:\n%w", err)
	}

	return nil

}
