package authsvc

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"time"

	"rentkaro/model"
	userrepo "rentkaro/repository/user"
	"rentkaro/util/hash"
	jwtutil "rentkaro/util/jwt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNoIdentifier  = errors.New("email or phone and password required")
	ErrBadEmail      = errors.New("invalid email format")
	ErrBadPhone      = errors.New("invalid phone format")
	ErrShortPassword = errors.New("password too short")
	ErrTaken         = errors.New("email or phone already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidCreds  = errors.New("invalid credentials")
)

// Session tokens are valid for a fixed window from issue.
const tokenTTL = 7 * 24 * time.Hour

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s\-()]{7,}$`)
)

type Service interface {
	Signup(ctx context.Context, req model.SignupReq) (*model.User, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.User, string, error)
}

type service struct {
	ur     userrepo.Repo
	secret string
}

func New(ur userrepo.Repo, secret string) Service {
	return &service{ur: ur, secret: secret}
}

// checkIdentifiers validates whichever of email/phone is present and
// requires at least one. Returns trimmed values as nullable columns.
func checkIdentifiers(email, phone string) (*string, *string, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if email == "" && phone == "" {
		return nil, nil, ErrNoIdentifier
	}
	var e, p *string
	if email != "" {
		if !emailRe.MatchString(email) {
			return nil, nil, ErrBadEmail
		}
		e = &email
	}
	if phone != "" {
		if !phoneRe.MatchString(phone) {
			return nil, nil, ErrBadPhone
		}
		p = &phone
	}
	return e, p, nil
}

func (s *service) Signup(ctx context.Context, req model.SignupReq) (*model.User, string, error) {
	email, phone, err := checkIdentifiers(req.Email, req.Phone)
	if err != nil {
		return nil, "", err
	}
	if len(req.Password) < 6 {
		return nil, "", ErrShortPassword
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{Email: email, Phone: phone, PasswordHash: hashed}
	if err := s.ur.Create(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, "", ErrTaken
		}
		return nil, "", err
	}

	token, err := jwtutil.Issue(s.secret, u.ID, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.User, string, error) {
	email, phone, err := checkIdentifiers(req.Email, req.Phone)
	if err != nil {
		return nil, "", err
	}
	if req.Password == "" {
		return nil, "", ErrNoIdentifier
	}

	u, err := s.ur.ByIdentifier(ctx, email, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if !hash.Check(u.PasswordHash, req.Password) {
		return nil, "", ErrInvalidCreds
	}

	token, err := jwtutil.Issue(s.secret, u.ID, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
