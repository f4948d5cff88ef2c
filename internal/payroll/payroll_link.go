package payroll

import (
	"time"

	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/golang-jwt/jwt/v5"
)

type linkClaims struct {
	Payslip     Snapshot `json:"payslip"`
	CreatedAtMs int64    `json:"created_at_ms"`
	TTLMs       int64    `json:"ttl_ms"`
	jwt.RegisteredClaims
}

// LinkSigner packs a payslip and its download token into an HS256 link.
// Expiry is judged by DownloadToken.IsExpired, not by JWT time claims.
type LinkSigner struct {
	secret []byte
}

func NewLinkSigner(secret string) (*LinkSigner, error) {
	if secret == "" {
		return nil, payrollerrors.ErrSigningUnavailable
	}
	return &LinkSigner{secret: []byte(secret)}, nil
}

func (s *LinkSigner) Issue(p Payslip, token DownloadToken) (string, error) {
	claims := linkClaims{
		Payslip:     p.Snapshot(),
		CreatedAtMs: token.CreatedAt.UnixMilli(),
		TTLMs:       token.TTL.Milliseconds(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       token.ID,
			Subject:  p.EmpID(),
			IssuedAt: jwt.NewNumericDate(token.CreatedAt),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Open verifies link and returns the payslip and token it carries. An
// expired token yields ErrDownloadExpired.
func (s *LinkSigner) Open(link string, now time.Time) (Payslip, DownloadToken, error) {
	claims := &linkClaims{}
	_, err := jwt.ParseWithClaims(link, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Payslip{}, DownloadToken{}, payrollerrors.ErrInvalidDownloadLink.WithCause(err)
	}

	token := DownloadToken{
		ID:        claims.ID,
		CreatedAt: time.UnixMilli(claims.CreatedAtMs),
		TTL:       time.Duration(claims.TTLMs) * time.Millisecond,
	}

	p, err := FromSnapshot(claims.Payslip)
	if err != nil {
		return Payslip{}, DownloadToken{}, payrollerrors.ErrInvalidDownloadLink.WithCause(err)
	}

	if token.IsExpired(now) {
		return p, token, payrollerrors.ErrDownloadExpired
	}

	return p, token, nil
}
