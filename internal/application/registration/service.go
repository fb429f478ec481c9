package registration

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	domcatalog "github.com/farmchain/marketplace/internal/domain/catalog"
	domoutbox "github.com/farmchain/marketplace/internal/domain/outbox"
	"github.com/farmchain/marketplace/internal/pkg/logging"
	"github.com/farmchain/marketplace/internal/pkg/money"
)

var (
	ErrMissingField  = errors.New("registration: missing required field")
	ErrInvalidField  = errors.New("registration: invalid field")
	ErrUnknownFarmer = errors.New("registration: farmer not found")
)

// New registrations start from this baseline rating.
const defaultRating = 4.5

const (
	defaultProductImage = "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400&h=300&fit=crop"
	addressSynthRetries = 3
)

var defaultFarmerImages = []string{
	"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop",
	"https://images.unsplash.com/photo-1544723795-3fb6469f5b39?w=300&h=300&fit=crop",
}

// AddressGenerator synthesizes a wallet address for farmers registering
// without one.
type AddressGenerator interface {
	NewAddress() string
}

// Service admits new farmers and products into the catalog.
type Service struct {
	catalog   domcatalog.Repository
	addresses AddressGenerator
	publisher domoutbox.Publisher
}

func NewService(catalog domcatalog.Repository, addresses AddressGenerator, publisher domoutbox.Publisher) *Service {
	return &Service{
		catalog:   catalog,
		addresses: addresses,
		publisher: publisher,
	}
}

type FarmerSpec struct {
	Name          string
	Location      string
	Bio           string
	Specialty     string
	Experience    string
	FarmSize      float64
	WalletAddress string
}

// RegisterFarmer validates the spec and inserts the farmer. A wallet address
// is synthesized when none is supplied. New farmers start unverified with
// zero products and the baseline rating.
func (s *Service) RegisterFarmer(ctx context.Context, spec FarmerSpec) (*domcatalog.Farmer, error) {
	switch {
	case spec.Name == "":
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	case spec.Location == "":
		return nil, fmt.Errorf("%w: location", ErrMissingField)
	case spec.Specialty == "":
		return nil, fmt.Errorf("%w: specialty", ErrMissingField)
	case spec.Experience == "":
		return nil, fmt.Errorf("%w: experience", ErrMissingField)
	case spec.FarmSize <= 0:
		return nil, fmt.Errorf("%w: farmSize", ErrMissingField)
	}

	address := spec.WalletAddress
	if address == "" {
		var err error
		address, err = s.synthesizeAddress(ctx)
		if err != nil {
			return nil, err
		}
	}

	bio := spec.Bio
	if bio == "" {
		bio = fmt.Sprintf("Experienced farmer from %s specializing in %s", spec.Location, spec.Specialty)
	}

	farmer, err := s.catalog.InsertFarmer(ctx, &domcatalog.Farmer{
		Name:        spec.Name,
		Address:     address,
		Location:    spec.Location,
		Image:       defaultFarmerImages[rand.IntN(len(defaultFarmerImages))],
		Specialties: []string{spec.Specialty},
		Experience:  spec.Experience + " years",
		Rating:      defaultRating,
		Verified:    false,
		Bio:         bio,
		FarmSize:    spec.FarmSize,
		JoinedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("registration: insert farmer: %w", err)
	}

	s.publish(ctx, domcatalog.NewFarmerRegisteredEvent(farmer))
	return farmer, nil
}

type ProductSpec struct {
	Name          string
	Category      string
	Description   string
	Price         string
	PriceETH      string
	Quantity      int
	Unit          string
	Image         string
	FarmerAddress string
}

// RegisterProduct validates the spec against an existing farmer and inserts
// the product. The ETH price is derived from the rupee price at the fixed
// conversion rate when not supplied. New products are verified with the
// baseline rating and zero reviews; the owner's product count goes up by one.
func (s *Service) RegisterProduct(ctx context.Context, spec ProductSpec) (*domcatalog.Product, error) {
	switch {
	case spec.Name == "":
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	case spec.Category == "":
		return nil, fmt.Errorf("%w: category", ErrMissingField)
	case spec.Description == "":
		return nil, fmt.Errorf("%w: description", ErrMissingField)
	case spec.Price == "":
		return nil, fmt.Errorf("%w: price", ErrMissingField)
	case spec.Unit == "":
		return nil, fmt.Errorf("%w: unit", ErrMissingField)
	case spec.FarmerAddress == "":
		return nil, fmt.Errorf("%w: farmerAddress", ErrMissingField)
	}
	if spec.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity", ErrInvalidField)
	}

	price, err := money.ParseINR(spec.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: price", ErrInvalidField)
	}

	priceETH := money.ETHEquivalent(price)
	if spec.PriceETH != "" {
		priceETH, err = money.ParseETH(spec.PriceETH)
		if err != nil {
			return nil, fmt.Errorf("%w: priceETH", ErrInvalidField)
		}
	}

	farmer, err := s.catalog.FarmerByAddress(ctx, spec.FarmerAddress)
	if err != nil {
		if errors.Is(err, domcatalog.ErrFarmerNotFound) {
			return nil, ErrUnknownFarmer
		}
		return nil, fmt.Errorf("registration: resolve farmer: %w", err)
	}

	image := spec.Image
	if image == "" {
		image = defaultProductImage
	}

	product, err := s.catalog.InsertProduct(ctx, &domcatalog.Product{
		Name:          spec.Name,
		Category:      spec.Category,
		Description:   spec.Description,
		Price:         price,
		PriceETH:      priceETH,
		Quantity:      spec.Quantity,
		Unit:          spec.Unit,
		Image:         image,
		FarmerName:    farmer.Name,
		FarmerAddress: farmer.Address,
		Location:      farmer.Location,
		Verified:      true,
		Rating:        defaultRating,
		Reviews:       0,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("registration: insert product: %w", err)
	}

	s.publish(ctx, domcatalog.NewProductRegisteredEvent(product))
	return product, nil
}

// synthesizeAddress generates until the address is unused. A UUID collision
// is effectively impossible, so running out of attempts means something else
// is broken.
func (s *Service) synthesizeAddress(ctx context.Context) (string, error) {
	for range addressSynthRetries {
		address := s.addresses.NewAddress()
		_, err := s.catalog.FarmerByAddress(ctx, address)
		if errors.Is(err, domcatalog.ErrFarmerNotFound) {
			return address, nil
		}
		if err != nil {
			return "", fmt.Errorf("registration: check address: %w", err)
		}
	}
	return "", errors.New("registration: could not synthesize a unique wallet address")
}

func (s *Service) publish(ctx context.Context, e domoutbox.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		logging.FromContext(ctx).Warn("registration_event_publish_failed",
			zap.String("event", e.EventName()),
			zap.Error(err),
		)
	}
}
