package kycrepo

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"

	"github.com/corebank/corebank/internal/domain"
	"github.com/corebank/corebank/internal/userrepo"
	"github.com/corebank/corebank/pkg/configpkg"
	"github.com/corebank/corebank/pkg/dbpkg"
	"github.com/corebank/corebank/pkg/passpkg"
	"github.com/corebank/corebank/pkg/randompkg"
)

var testConfig configpkg.Config

func TestMain(m *testing.M) {
	var err error

	testConfig, err = configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	os.Exit(m.Run())
}

func testSetup(t *testing.T) (*RepoPGS, *userrepo.RepoPGS) {
	t.Helper()

	tx := dbpkg.SetupTX(t, testConfig.DBDriver, testConfig.DBSource)

	return NewRepoPGS(tx), userrepo.NewRepoPGS(tx)
}

func createRandomUser(t *testing.T, users *userrepo.RepoPGS) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(10))
	require.NoError(t, err)

	user, err := users.Create(context.Background(), domain.CreateUserParams{
		Email:          randompkg.Email(),
		FullName:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		Role:           domain.RoleCustomer,
	})
	require.NoError(t, err)

	return user
}

func TestCreateAndGet(t *testing.T) {
	repo, users := testSetup(t)
	ctx := context.Background()

	user := createRandomUser(t, users)

	application, err := repo.Create(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, application.UserID)
	require.Equal(t, domain.KYCPending, application.Status)
	require.NotZero(t, application.ID)
	require.NotZero(t, application.CreatedAt)

	got, err := repo.Get(ctx, application.ID)
	require.NoError(t, err)
	require.Equal(t, application, got)

	got, err = repo.GetByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, application, got)
}

func TestGetNotFound(t *testing.T) {
	repo, _ := testSetup(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, 1_000_000_000)
	require.ErrorIs(t, err, domain.ErrKYCNotFound)

	_, err = repo.GetByUser(ctx, 1_000_000_000)
	require.ErrorIs(t, err, domain.ErrKYCNotFound)
}

func TestSetStatus(t *testing.T) {
	repo, users := testSetup(t)
	ctx := context.Background()

	user := createRandomUser(t, users)

	application, err := repo.Create(ctx, user.ID)
	require.NoError(t, err)

	updated, err := repo.SetStatus(ctx, application.ID, domain.KYCApproved)
	require.NoError(t, err)
	require.Equal(t, domain.KYCApproved, updated.Status)
	require.Equal(t, application.ID, updated.ID)

	_, err = repo.SetStatus(ctx, 1_000_000_000, domain.KYCApproved)
	require.ErrorIs(t, err, domain.ErrKYCNotFound)
}

func TestAddDocument(t *testing.T) {
	repo, users := testSetup(t)
	ctx := context.Background()

	user := createRandomUser(t, users)

	application, err := repo.Create(ctx, user.ID)
	require.NoError(t, err)

	document, err := repo.AddDocument(ctx, application.ID, domain.DocAadhaar, "/var/kyc/1/aadhaar.png")
	require.NoError(t, err)
	require.Equal(t, application.ID, document.KYCID)
	require.Equal(t, domain.DocAadhaar, document.DocumentType)
	require.Equal(t, "/var/kyc/1/aadhaar.png", document.FilePath)
	require.NotZero(t, document.ID)
	require.NotZero(t, document.UploadedAt)
}

func TestListAndCountByStatus(t *testing.T) {
	repo, users := testSetup(t)
	ctx := context.Background()

	pendingBefore, err := repo.CountByStatus(ctx, domain.KYCPending)
	require.NoError(t, err)

	first, err := repo.Create(ctx, createRandomUser(t, users).ID)
	require.NoError(t, err)
	second, err := repo.Create(ctx, createRandomUser(t, users).ID)
	require.NoError(t, err)

	_, err = repo.SetStatus(ctx, second.ID, domain.KYCRejected)
	require.NoError(t, err)

	pendingAfter, err := repo.CountByStatus(ctx, domain.KYCPending)
	require.NoError(t, err)
	require.Equal(t, pendingBefore+1, pendingAfter)

	pending, err := repo.ListByStatus(ctx, domain.KYCPending)
	require.NoError(t, err)
	require.Contains(t, pending, first)

	for _, application := range pending {
		require.Equal(t, domain.KYCPending, application.Status)
	}
}
