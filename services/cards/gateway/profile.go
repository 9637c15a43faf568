package gateway

import (
	"context"
	"fmt"

	"github.com/tapcard/tapcard/internal/pkg/models"
)

// GetProfileContact fetches the stored contact fields for a profile from the
// profile-store service
func (g *CardGW) GetProfileContact(ctx context.Context, profileID string) (*models.ProfileContact, error) {
	var contact models.ProfileContact
	endpoint := fmt.Sprintf("/internal/profiles/%s/contact", profileID)
	if err := g.profileClient.GetJSON(ctx, endpoint, &contact); err != nil {
		return nil, fmt.Errorf("failed to fetch profile contact: %w", err)
	}
	return &contact, nil
}
