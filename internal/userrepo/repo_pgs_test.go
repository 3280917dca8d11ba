package userrepo

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"

	"github.com/corebank/corebank/internal/domain"
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

func testSetup(t *testing.T) *RepoPGS {
	t.Helper()

	tx := dbpkg.SetupTX(t, testConfig.DBDriver, testConfig.DBSource)

	return NewRepoPGS(tx)
}

func createRandomUser(t *testing.T, repo *RepoPGS) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(10))
	require.NoError(t, err)

	arg := domain.CreateUserParams{
		Email:          randompkg.Email(),
		FullName:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		Role:           domain.RoleCustomer,
	}

	user, err := repo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Email, user.Email)
	require.Equal(t, arg.FullName, user.FullName)
	require.Equal(t, arg.HashedPassword, user.HashedPassword)
	require.Equal(t, arg.Role, user.Role)
	require.NotZero(t, user.ID)
	require.NotZero(t, user.CreatedAt)

	return user
}

func TestCreate(t *testing.T) {
	repo := testSetup(t)
	createRandomUser(t, repo)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := testSetup(t)

	user := createRandomUser(t, repo)

	_, err := repo.Create(context.Background(), domain.CreateUserParams{
		Email:          user.Email,
		FullName:       randompkg.Owner(),
		HashedPassword: user.HashedPassword,
		Role:           domain.RoleCustomer,
	})
	require.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestGetByEmail(t *testing.T) {
	repo := testSetup(t)

	user := createRandomUser(t, repo)

	got, err := repo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	require.Equal(t, user, got)

	_, err = repo.GetByEmail(context.Background(), "nobody@nowhere.test")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetByID(t *testing.T) {
	repo := testSetup(t)

	user := createRandomUser(t, repo)

	got, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, user, got)

	_, err = repo.GetByID(context.Background(), user.ID+1_000_000)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCount(t *testing.T) {
	repo := testSetup(t)

	before, err := repo.Count(context.Background())
	require.NoError(t, err)

	createRandomUser(t, repo)
	createRandomUser(t, repo)

	after, err := repo.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, before+2, after)
}
