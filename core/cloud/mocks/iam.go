package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/stretchr/testify/mock"
)

// IAM is a mock implementation of cloud.IAMAPI
type IAM struct {
	mock.Mock
}

func (m *IAM) ListAccountAliases(ctx context.Context, params *iam.ListAccountAliasesInput, optFns ...func(*iam.Options)) (*iam.ListAccountAliasesOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*iam.ListAccountAliasesOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
