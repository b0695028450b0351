package domain

import "github.com/shopspring/decimal"

// Snapshot is the complete in-memory representation of the persisted state:
// the unit of every load and save. All lookups below are pure functions over
// the snapshot; mutation happens only inside a store update cycle.
type Snapshot struct {
	Users     []*User     `json:"users"`
	Products  []*Product  `json:"products"`
	Purchases []*Purchase `json:"purchases"`
}

// NewSeedSnapshot returns the first-boot state: no users or purchases and
// the fixed sample catalog.
func NewSeedSnapshot() *Snapshot {
	return &Snapshot{
		Users:     []*User{},
		Purchases: []*Purchase{},
		Products: []*Product{
			{
				ID:          1,
				Name:        "DIMENSION: DILEMMA Album",
				Price:       decimal.RequireFromString("25.99"),
				Category:    "albums",
				Emoji:       "💿",
				Description: "Álbum completo con photobook exclusivo",
				Stock:       100,
			},
			{
				ID:          2,
				Name:        "Hoodie Oficial ENHYPEN",
				Price:       decimal.RequireFromString("55.00"),
				Category:    "clothing",
				Emoji:       "👕",
				Description: "Sudadera oficial con capucha",
				Stock:       50,
			},
			{
				ID:          3,
				Name:        "Lightstick ENHYPEN Official",
				Price:       decimal.RequireFromString("45.00"),
				Category:    "accessories",
				Emoji:       "✨",
				Description: "Lightstick oficial para conciertos",
				Stock:       75,
			},
		},
	}
}

// FindProduct looks a product up by identifier.
func (s *Snapshot) FindProduct(id int64) (*Product, error) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

// FindUserByID looks a user up by identifier.
func (s *Snapshot) FindUserByID(id int64) (*User, error) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindUserByEmail looks a user up by exact (byte-wise) email equality.
func (s *Snapshot) FindUserByEmail(email string) (*User, error) {
	for _, u := range s.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindPurchase looks a purchase up by identifier.
func (s *Snapshot) FindPurchase(id int64) (*Purchase, error) {
	for _, p := range s.Purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrPurchaseNotFound
}

// PurchasesByUser returns the user's purchases in commit order.
func (s *Snapshot) PurchasesByUser(userID int64) []*Purchase {
	out := []*Purchase{}
	for _, p := range s.Purchases {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// NextUserID returns one greater than the highest assigned user id.
func (s *Snapshot) NextUserID() int64 {
	var max int64
	for _, u := range s.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// NextPurchaseID returns one greater than the highest committed purchase id.
// Failed purchase attempts never persist, so ids stay monotonic and are
// never reused.
func (s *Snapshot) NextPurchaseID() int64 {
	var max int64
	for _, p := range s.Purchases {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
