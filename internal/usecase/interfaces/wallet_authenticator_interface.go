package interfaces

import (
	"context"

	"choco_checkout/internal/domain/entities"
)

// IWalletAuthenticator verifies a wallet access token obtained by the wallet SDK.
type IWalletAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (entities.WalletSession, error)
}
