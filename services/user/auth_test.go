package user

import (
	"testing"

	"foodbridge/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*models.User{}}
}

func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) Create(u *models.User) error {
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUserRepo) UpdateWithDocument(id string, update bson.M) error { return nil }

func (m *memUserRepo) GetAllWithProjection(projection bson.M) ([]models.User, error) {
	return nil, nil
}

func (m *memUserRepo) FindByLocationsAndRole(cities []string, role string) ([]models.User, error) {
	return nil, nil
}

func (m *memUserRepo) Count() (int64, error) { return int64(len(m.byEmail)), nil }

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	created, err := svc.Register(models.User{
		Name:     "Harvest Bank",
		Email:    "bank@example.com",
		Role:     models.RoleFoodBank,
		Location: "Springfield",
	}, "secret-pw")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotEqual(t, "secret-pw", created.PasswordHash)

	res, err := svc.Authenticate("bank@example.com", "secret-pw")
	require.NoError(t, err)
	require.Equal(t, "bearer", res.TokenType)
	require.Equal(t, models.RoleFoodBank, res.Role)
	require.NotEmpty(t, res.AccessToken)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.Register(models.User{Email: "a@example.com", Role: models.RoleSupermarket}, "pw")
	require.NoError(t, err)

	_, err = svc.Register(models.User{Email: "a@example.com", Role: models.RoleConsumer}, "pw")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.Register(models.User{Email: "a@example.com", Role: "warehouse"}, "pw")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthenticateRejectsBadPassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.Register(models.User{Email: "a@example.com", Role: models.RoleConsumer}, "pw")
	require.NoError(t, err)

	_, err = svc.Authenticate("a@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("missing@example.com", "pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
