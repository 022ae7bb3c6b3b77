package main

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type user struct {
	ID          string
	Username    string
	Password    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Image       string
	Role        string
}

type market struct {
	ID          int64
	Name        string
	Description string
	Owner       string
	PhoneNumber string
	Image       string
	Latitude    float64
	Longitude   float64
}

type category struct {
	ID   int64
	Name string
}

type product struct {
	ID            int64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	Image         string
	CategoryID    string
	MarketID      string
}

// memory is the stub's whole backing state. Everything is lost on
// restart, which is the point of a dev stub.
type memory struct {
	mu sync.RWMutex

	users      map[string]user
	markets    []market
	categories []category
	products   []product

	nextProductID int64
}

func newMemory() *memory {
	m := &memory{
		users:         map[string]user{},
		nextProductID: 100,
	}
	m.seed()
	return m
}

// seed covers the three navigation outcomes: a buyer, an owner with a
// market and an owner still pending setup.
func (m *memory) seed() {
	for _, u := range []user{
		{Username: "alice", Password: "alice123", FirstName: "Alice", LastName: "Martin", Email: "alice@dealsquare.dev", Role: "CLIENT"},
		{Username: "bob", Password: "bob123", FirstName: "Bob", LastName: "Durand", Email: "bob@dealsquare.dev", Role: "MARKET"},
		{Username: "carol", Password: "carol123", FirstName: "Carol", LastName: "Petit", Email: "carol@dealsquare.dev", Role: "MARKET"},
	} {
		u.ID = uuid.NewString()
		m.users[u.Username] = u
	}

	m.markets = []market{
		{ID: 1, Name: "Marché de Bob", Description: "Organic skincare", Owner: "bob", PhoneNumber: "+33600000001", Latitude: 48.8566, Longitude: 2.3522},
	}

	m.categories = []category{
		{ID: 1, Name: "Skincare"},
		{ID: 2, Name: "Food"},
		{ID: 3, Name: "Crafts"},
	}

	m.products = []product{
		{ID: 1, Name: "Hydrating Mask", Description: "Volume 85ml", Price: decimal.RequireFromString("28"), StockQuantity: 12, CategoryID: "1", MarketID: "1"},
		{ID: 2, Name: "Lip Balm", Description: "Volume 3.50ml", Price: decimal.RequireFromString("8"), StockQuantity: 40, CategoryID: "1", MarketID: "1"},
		{ID: 3, Name: "Floral Water", Description: "Volume 30ml", Price: decimal.RequireFromString("12"), StockQuantity: 5, CategoryID: "1", MarketID: "1"},
	}
}

func (m *memory) userByName(username string) (user, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[username]
	return u, ok
}

func (m *memory) addUser(u user) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[u.Username]; exists {
		return false
	}
	u.ID = uuid.NewString()
	m.users[u.Username] = u
	return true
}

func (m *memory) marketByOwner(owner string) (market, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, mk := range m.markets {
		if mk.Owner == owner {
			return mk, true
		}
	}
	return market{}, false
}

func (m *memory) listMarkets() []market {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]market, len(m.markets))
	copy(out, m.markets)
	return out
}

func (m *memory) listCategories() []category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]category, len(m.categories))
	copy(out, m.categories)
	return out
}

func (m *memory) listProducts() []product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]product, len(m.products))
	copy(out, m.products)
	return out
}

func (m *memory) productByID(id string) (product, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.products {
		if strconv.FormatInt(p.ID, 10) == id {
			return p, true
		}
	}
	return product{}, false
}

func (m *memory) addProduct(p product) product {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextProductID
	m.nextProductID++
	m.products = append(m.products, p)
	return p
}
