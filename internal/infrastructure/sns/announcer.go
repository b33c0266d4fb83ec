package sns

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/nownpp/wonder-science-hub/internal/config"
)

// Announcer publishes newly posted announcements to an SNS topic so external
// channels (push relays, digest jobs) can fan them out.
type Announcer interface {
	Announce(ctx context.Context, subject, message string) error
}

type announcer struct {
	client   *sns.Client
	topicARN string
}

func NewAnnouncer(cfg *config.Config) (Announcer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}
	return &announcer{client: sns.NewFromConfig(awsCfg), topicARN: cfg.SNSTopicARN}, nil
}

func (a *announcer) Announce(ctx context.Context, subject, message string) error {
	_, err := a.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(a.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	return err
}
