package utils

import (
	"os"
	"testing"
	"time"
	"yalla-server/internal/config"
)

func TestMain(m *testing.M) {
	config.InitConfig("")
	os.Exit(m.Run())
}

func TestLoginToken_RoundTrip(t *testing.T) {
	token, err := GenerateLoginToken(123, "alice", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	claims, err := ParseLoginToken(token)
	if err != nil {
		t.Fatalf("ParseLoginToken error: %v", err)
	}
	if claims.ID != 123 || claims.Username != "alice" || claims.Admin != true || claims.Type != "login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseLoginToken_Expired(t *testing.T) {
	token, err := GenerateLoginToken(1, "alice", false, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateLoginToken error: %v", err)
	}
	_, err = ParseLoginToken(token)
	if err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestParseLoginToken_Garbage(t *testing.T) {
	_, err := ParseLoginToken("not.a.token")
	if err == nil {
		t.Fatalf("expected parse error")
	}
}
