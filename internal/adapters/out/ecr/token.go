// Package ecr implements the registry password provider on the AWS ECR API.
package ecr

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ecr"
)

// AuthAPI is the subset of the ECR client used here.
type AuthAPI interface {
	GetAuthorizationToken(ctx context.Context, params *ecr.GetAuthorizationTokenInput, optFns ...func(*ecr.Options)) (*ecr.GetAuthorizationTokenOutput, error)
}

// TokenProvider implements the RegistryPasswordProvider interface.
type TokenProvider struct {
	api AuthAPI
}

// NewTokenProvider loads the ambient AWS credentials for region.
func NewTokenProvider(ctx context.Context, region string) (*TokenProvider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewTokenProviderWithAPI(ecr.NewFromConfig(cfg)), nil
}

// NewTokenProviderWithAPI creates a provider backed by a custom client (for testing).
func NewTokenProviderWithAPI(api AuthAPI) *TokenProvider {
	return &TokenProvider{api: api}
}

// Password returns the password half of the ECR authorization token, the
// same value `aws ecr get-login-password` prints.
func (p *TokenProvider) Password(ctx context.Context) (string, error) {
	out, err := p.api.GetAuthorizationToken(ctx, &ecr.GetAuthorizationTokenInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get ECR authorization token: %w", err)
	}
	if len(out.AuthorizationData) == 0 {
		return "", errors.New("ECR returned no authorization data")
	}

	raw := aws.ToString(out.AuthorizationData[0].AuthorizationToken)
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode ECR authorization token: %w", err)
	}

	user, password, ok := strings.Cut(string(decoded), ":")
	if !ok || user != "AWS" || password == "" {
		return "", errors.New("malformed ECR authorization token")
	}
	return password, nil
}
