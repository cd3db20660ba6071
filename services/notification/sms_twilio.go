package notification

import (
	"errors"

	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioSMS struct {
	Config *utils.Config
}

func (t *TwilioSMS) SendSMS(phone, message string) error {
	if t.Config.TwilioSenderPhone == "" {
		return errors.New("twilio sender phone is not configured")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   t.Config.TwilioKeySid,
		Password:   t.Config.TwilioKeySecret,
		AccountSid: t.Config.TwilioAccountSID,
	})

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(t.Config.TwilioSenderPhone)
	params.SetBody(message)

	_, err := client.Api.CreateMessage(params)
	return err
}
