package secrets

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"trackr-engine/internal/config"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "trackr-engine"

// EnvRendererToken is the fallback for headless environments (CI, containers)
// where no keychain exists.
const EnvRendererToken = "TRACKR_RENDERER_TOKEN"

// GetRendererToken looks up the render-service API token: keyring first,
// then the environment.
func GetRendererToken(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		tok, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(tok) != "" {
			return tok, nil
		}
	}
	if tok := strings.TrimSpace(os.Getenv(EnvRendererToken)); tok != "" {
		return tok, nil
	}
	return "", errors.New("renderer token not found (set it in the keychain or via " + EnvRendererToken + ")")
}

func SetRendererToken(keyringAccount, token string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, token)
}

func DeleteRendererToken(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

// RendererKeyringAccount derives the keychain account id from config, keyed
// by the render service host so switching services doesn't reuse a stale
// token. config may pin it explicitly instead.
func RendererKeyringAccount(cfg config.Config) string {
	if cfg.Renderer.KeyringAccount != "" {
		return cfg.Renderer.KeyringAccount
	}
	host := cfg.Renderer.Endpoint
	if u, err := url.Parse(cfg.Renderer.Endpoint); err == nil && u.Host != "" {
		host = u.Host
	}
	return fmt.Sprintf("trackr:renderer:%s", host)
}
