package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/aws-billing-report-go/internal/domain/entity"
	"github.com/diillson/aws-billing-report-go/internal/domain/repository"
	"github.com/rs/zerolog"
)

// OrganizationRepositoryImpl implementa o OrganizationRepository sobre
// STS e AWS Organizations.
type OrganizationRepositoryImpl struct {
	stsClient *sts.Client
	orgClient *organizations.Client
	logger    zerolog.Logger
}

// NewOrganizationRepository cria uma nova implementação do OrganizationRepository.
func NewOrganizationRepository(cfg aws.Config, logger zerolog.Logger) repository.OrganizationRepository {
	return &OrganizationRepositoryImpl{
		stsClient: sts.NewFromConfig(cfg),
		orgClient: organizations.NewFromConfig(cfg),
		logger:    logger,
	}
}

// GetOrganizationInfo resolve o ID e o nome da organização. Sem acesso ao
// Organizations, degrada para o ID da conta do chamador com nome genérico.
func (r *OrganizationRepositoryImpl) GetOrganizationInfo(ctx context.Context) (entity.OrganizationInfo, error) {
	identity, err := r.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return entity.OrganizationInfo{}, fmt.Errorf("error getting caller identity: %w", err)
	}
	accountID := aws.ToString(identity.Account)

	org, err := r.orgClient.DescribeOrganization(ctx, &organizations.DescribeOrganizationInput{})
	if err != nil || org.Organization == nil {
		// Conta fora de uma organização (ou sem permissão): usa a própria conta.
		r.logger.Warn().Err(err).Msg("organizations access not available, using caller account")
		return entity.OrganizationInfo{ID: accountID, Name: "AWS Organization"}, nil
	}

	info := entity.OrganizationInfo{
		ID:   aws.ToString(org.Organization.Id),
		Name: "AWS Organization",
	}

	masterAccountID := aws.ToString(org.Organization.MasterAccountId)
	if masterAccountID == "" {
		masterAccountID = accountID
	}

	account, err := r.orgClient.DescribeAccount(ctx, &organizations.DescribeAccountInput{
		AccountId: aws.String(masterAccountID),
	})
	if err == nil && account.Account != nil && aws.ToString(account.Account.Name) != "" {
		info.Name = aws.ToString(account.Account.Name)
	}

	return info, nil
}

// GetAccountDirectory lista todas as contas da organização e monta o mapa
// ID -> nome de exibição.
func (r *OrganizationRepositoryImpl) GetAccountDirectory(ctx context.Context) (entity.AccountDirectory, error) {
	directory := entity.AccountDirectory{}

	paginator := organizations.NewListAccountsPaginator(r.orgClient, &organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing organization accounts: %w", err)
		}
		for _, account := range page.Accounts {
			directory[aws.ToString(account.Id)] = aws.ToString(account.Name)
		}
	}

	return directory, nil
}
