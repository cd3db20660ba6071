package notification

import (
	"github.com/PayRipple/PayRipple-Backend/utils"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
)

// SNSSMS delivers SMS through AWS SNS, the fallback channel when Twilio is
// unavailable in a region.
type SNSSMS struct {
	Config *utils.Config
}

func (s *SNSSMS) SendSMS(phone, message string) error {
	sess := session.Must(session.NewSession(
		&aws.Config{
			Region:      aws.String(s.Config.AWSRegion),
			Credentials: credentials.NewStaticCredentials(s.Config.AWSAccessKeyID, s.Config.AWSSecretKey, ""),
		},
	))

	svc := sns.New(sess)

	params := &sns.PublishInput{
		Message:     aws.String(message),
		PhoneNumber: aws.String(phone),
	}

	_, err := svc.Publish(params)
	return err
}
