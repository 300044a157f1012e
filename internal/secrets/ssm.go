package secrets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// API is the subset of the SSM client the store uses.
type API interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

// Store reads decrypted parameters from AWS Systems Manager Parameter Store.
type Store struct {
	client API
	logger *slog.Logger
}

func NewStore(client API, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, logger: logger}
}

// Fetch returns the decrypted values for the named parameters. Every name
// must resolve to a non-empty value; anything else is a configuration error
// and aborts the run before any provider call is made.
func (s *Store) Fetch(ctx context.Context, names []string) (map[string]string, error) {
	out, err := s.client.GetParameters(ctx, &ssm.GetParametersInput{
		Names:          names,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ssm get parameters: %w", err)
	}
	if len(out.InvalidParameters) > 0 {
		return nil, fmt.Errorf("ssm parameters not found: %s", strings.Join(out.InvalidParameters, ", "))
	}

	values := make(map[string]string, len(out.Parameters))
	for _, p := range out.Parameters {
		name := aws.ToString(p.Name)
		value := aws.ToString(p.Value)
		if value == "" {
			return nil, fmt.Errorf("ssm parameter %q is empty", name)
		}
		values[name] = value
	}
	for _, name := range names {
		if _, ok := values[name]; !ok {
			return nil, fmt.Errorf("ssm parameter %q missing from response", name)
		}
	}

	s.logger.Debug("secrets fetched", "count", len(values))
	return values, nil
}
