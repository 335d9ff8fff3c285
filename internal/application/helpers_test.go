package application_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pogojump/pogojump-api/internal/application"
	"github.com/pogojump/pogojump-api/internal/domain/entity"
	"github.com/pogojump/pogojump-api/internal/infrastructure/filestore"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

type recordingNotifier struct {
	mu     sync.Mutex
	users  []entity.PublicUser
	orders []entity.Order
	err    error
}

func (n *recordingNotifier) UserRegistered(_ context.Context, u entity.PublicUser) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.users = append(n.users, u)
	return n.err
}

func (n *recordingNotifier) OrderPlaced(_ context.Context, o entity.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, o)
	return n.err
}

type testApp struct {
	path     string
	store    *application.DocumentStore
	jwt      *helpers.JWTManager
	notifier *recordingNotifier
	auth     *application.AuthService
	products *application.ProductService
	reviews  *application.ReviewService
	orders   *application.OrderService
	users    *application.UserService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	store := application.NewDocumentStore(filestore.NewDocumentRepository(path), nil, nil, true)
	ids := application.NewIDGenerator()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	n := &recordingNotifier{}
	return &testApp{
		path:     path,
		store:    store,
		jwt:      jwt,
		notifier: n,
		auth:     application.NewAuthService(store, jwt, helpers.NewPasswordHasher(bcrypt.MinCost), ids, n, nil, nil),
		products: application.NewProductService(store, ids, nil),
		reviews:  application.NewReviewService(store, ids, nil),
		orders:   application.NewOrderService(store, ids, n, nil, nil),
		users:    application.NewUserService(store, nil),
	}
}

// register creates an account and returns the identity its token carries.
func (a *testApp) register(t *testing.T, email, name string) application.Identity {
	t.Helper()
	res, err := a.auth.Register(context.Background(), application.RegisterInput{Email: email, Password: "secret123", Name: name})
	require.NoError(t, err)
	id, err := application.Authenticate(a.jwt, "Bearer "+res.Token)
	require.NoError(t, err)
	return id
}

func requireKind(t *testing.T, err error, kind application.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, application.KindOf(err), "error: %v", err)
}
