package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	user := uuid.New()

	token, err := CreateToken(secret, user, "admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != user.String() || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}

	if _, err := ValidateToken([]byte("other"), token); err == nil {
		t.Error("token accepted with the wrong secret")
	}
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	secret := []byte("s3cret")
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: uuid.NewString()}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ValidateToken(secret, token); err == nil {
		t.Error("HS512 token accepted")
	}
}

func TestValidateToken_RequiresUser(t *testing.T) {
	secret := []byte("s3cret")
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Role: "user"}).SignedString(secret)
	if _, err := ValidateToken(secret, token); err == nil {
		t.Error("token without user id accepted")
	}
}

func TestTimeFormatting(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	ts := time.Date(2026, 3, 1, 20, 45, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"clock shifts zone", FormatClock(ts, loc), "03:45"},
		{"date shifts zone", FormatDate(ts, loc), "2026-03-02"},
		{"rfc3339", FormatRFC3339(ts, loc), "2026-03-02T03:45:00+07:00"},
		{"zero clock", FormatClock(time.Time{}, loc), ""},
		{"zero date", FormatDate(time.Time{}, loc), ""},
		{"unset unix seconds", FormatRFC3339(FromUnixSeconds(0, loc), loc), ""},
		{"unix seconds", FormatRFC3339(FromUnixSeconds(ts.Unix(), time.UTC), time.UTC), "2026-03-01T20:45:00Z"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadScheduleLocation_Fallback(t *testing.T) {
	loc := LoadScheduleLocation("Not/AZone")
	_, offset := time.Date(2026, 1, 1, 0, 0, 0, 0, loc).Zone()
	if offset != 7*3600 {
		t.Errorf("fallback offset = %d, want +7h", offset)
	}
}
