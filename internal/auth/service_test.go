package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/ankaahq/ankaa-access/internal/authz"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock repository for testing
type mockAuthRepository struct {
	passwords     map[string]string // email -> password hash
	userIDs       map[string]int64  // email -> userID
	usersByID     map[int64]*User
	returnError   bool
	errorToReturn error
}

func newMockAuthRepository() *mockAuthRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)

	warehouse := &authz.Sector{ID: 1, Name: "Warehouse", Privileges: authz.PrivilegeWarehouse}
	production := &authz.Sector{ID: 2, Name: "Production A", Privileges: authz.PrivilegeProduction}
	admin := &authz.Sector{ID: 3, Name: "Administration", Privileges: authz.PrivilegeAdmin}

	return &mockAuthRepository{
		passwords: map[string]string{
			"worker@ankaa.dev": string(hashedPassword),
			"leader@ankaa.dev": string(hashedPassword),
			"admin@ankaa.dev":  string(hashedPassword),
		},
		userIDs: map[string]int64{
			"worker@ankaa.dev": 1,
			"leader@ankaa.dev": 2,
			"admin@ankaa.dev":  3,
		},
		usersByID: map[int64]*User{
			1: {ID: 1, Email: "worker@ankaa.dev", Name: "Worker", Sector: warehouse},
			2: {ID: 2, Email: "leader@ankaa.dev", Name: "Leader", Sector: production, ManagedSector: production},
			3: {ID: 3, Email: "admin@ankaa.dev", Name: "Admin", Sector: admin},
		},
	}
}

func (m *mockAuthRepository) GetPasswordForEmail(email string) (string, int64, error) {
	if m.returnError {
		return "", 0, m.errorToReturn
	}
	if hash, exists := m.passwords[email]; exists {
		if userID, ok := m.userIDs[email]; ok {
			return hash, userID, nil
		}
	}
	return "", 0, errors.New("user not found")
}

func (m *mockAuthRepository) GetSessionUser(userID int64) (*User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if user, exists := m.usersByID[userID]; exists {
		return user, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockAuthRepository) setError(err error) {
	m.returnError = true
	m.errorToReturn = err
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service       *Service
		mockRepo      *mockAuthRepository
		tokenGen      *JWTTokenGenerator
		accessSecret  string        = "test-access-secret"
		refreshSecret string        = "test-refresh-secret"
		accessTTL     time.Duration = 15 * time.Minute
		refreshTTL    time.Duration = 24 * time.Hour
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockAuthRepository()
		tokenGen = NewJWTTokenGenerator(accessSecret, refreshSecret, accessTTL, refreshTTL)
		service = NewService(mockRepo, tokenGen, bcrypt.DefaultCost)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return access and refresh tokens", func() {
				dto := LoginDTO{
					Email:    "worker@ankaa.dev",
					Password: "correct_password",
				}

				tokens, err := service.Authenticate(dto)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.Equal(tokens.RefreshToken))
			})

			ginkgo.It("should embed the user ID in the access token", func() {
				dto := LoginDTO{
					Email:    "leader@ankaa.dev",
					Password: "correct_password",
				}

				tokens, err := service.Authenticate(dto)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				claims, err := service.ValidateAccessToken(tokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal(int64(2)))
			})
		})

		ginkgo.Context("when the password is wrong", func() {
			ginkgo.It("should return ErrInvalidCredentials", func() {
				dto := LoginDTO{
					Email:    "worker@ankaa.dev",
					Password: "wrong_password",
				}

				_, err := service.Authenticate(dto)
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the user does not exist", func() {
			ginkgo.It("should return ErrInvalidCredentials", func() {
				dto := LoginDTO{
					Email:    "nobody@ankaa.dev",
					Password: "correct_password",
				}

				_, err := service.Authenticate(dto)
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when required fields are missing", func() {
			ginkgo.It("should return a validation error for missing email", func() {
				_, err := service.Authenticate(LoginDTO{Password: "correct_password"})
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			})

			ginkgo.It("should return a validation error for missing password", func() {
				_, err := service.Authenticate(LoginDTO{Email: "worker@ankaa.dev"})
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			})
		})

		ginkgo.Context("when the repository fails", func() {
			ginkgo.It("should not leak the failure mode", func() {
				mockRepo.setError(errors.New("connection refused"))

				_, err := service.Authenticate(LoginDTO{
					Email:    "worker@ankaa.dev",
					Password: "correct_password",
				})
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		ginkgo.It("should issue a fresh token pair for a valid refresh token", func() {
			tokens, err := service.Authenticate(LoginDTO{
				Email:    "admin@ankaa.dev",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(refreshed.AccessToken).ToNot(gomega.BeEmpty())
			gomega.Expect(refreshed.RefreshToken).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should reject a garbage token", func() {
			_, err := service.RefreshTokens("not-a-token")
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})

		ginkgo.It("should reject an access token signed with the wrong secret", func() {
			otherGen := NewJWTTokenGenerator("other-access", "other-refresh", accessTTL, refreshTTL)
			token, err := otherGen.GenerateRefreshToken(1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.RefreshTokens(token)
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		ginkgo.It("should reject an expired token", func() {
			shortGen := NewJWTTokenGenerator(accessSecret, refreshSecret, -time.Minute, refreshTTL)
			token, err := shortGen.GenerateAccessToken(1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
		})
	})

	ginkgo.Describe("GetSessionUser", func() {
		ginkgo.It("should load the user with sector and managed sector", func() {
			user, err := service.GetSessionUser(2)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(user.Sector).ToNot(gomega.BeNil())
			gomega.Expect(user.ManagedSector).ToNot(gomega.BeNil())
			gomega.Expect(user.IsTeamLeader()).To(gomega.BeTrue())
		})

		ginkgo.It("should report non-leaders correctly", func() {
			user, err := service.GetSessionUser(1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(user.IsTeamLeader()).To(gomega.BeFalse())
			gomega.Expect(user.IsAdmin()).To(gomega.BeFalse())
		})

		ginkgo.It("should recognize administrators", func() {
			user, err := service.GetSessionUser(3)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(user.IsAdmin()).To(gomega.BeTrue())
		})

		ginkgo.It("should fail for unknown users", func() {
			_, err := service.GetSessionUser(999)
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
