package contacts

import (
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Directory is the in-memory contact list. Contacts are kept newest first and
// phone numbers are unique after normalization.
type Directory struct {
	mu       sync.Mutex
	contacts map[string]*Contact
	order    []string // newest first
	phones   map[string]string

	region string
	now    func() time.Time
}

// Option configures a Directory
type Option func(*Directory)

// WithClock sets the time source for AddedAt and LastNotified
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithDefaultRegion sets the region given to contacts added without one
func WithDefaultRegion(region string) Option {
	return func(d *Directory) {
		if region = strings.TrimSpace(region); region != "" {
			d.region = region
		}
	}
}

// NewDirectory creates an empty directory
func NewDirectory(opts ...Option) *Directory {
	d := &Directory{
		contacts: make(map[string]*Contact),
		phones:   make(map[string]string),
		region:   DefaultRegion,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add validates a draft, applies defaults and stores the contact. New
// contacts are active farmers who receive alerts in Swahili unless the draft
// says otherwise.
func (d *Directory) Add(draft Draft) (Contact, error) {
	c := Contact{
		Name:              strings.TrimSpace(draft.Name),
		PhoneNumber:       strings.TrimSpace(draft.PhoneNumber),
		AlternatePhone:    strings.TrimSpace(draft.AlternatePhone),
		Email:             strings.TrimSpace(draft.Email),
		Village:           strings.TrimSpace(draft.Village),
		Region:            strings.TrimSpace(draft.Region),
		Status:            Active,
		ReceiveAlerts:     true,
		Notes:             strings.TrimSpace(draft.Notes),
		AddedBy:           strings.TrimSpace(draft.AddedBy),
		Category:          Farmer,
		PreferredLanguage: Swahili,
	}
	if c.Name == "" {
		return Contact{}, fmt.Errorf("%w: missing required field: name", ErrInvalidContact)
	}
	if c.Village == "" {
		return Contact{}, fmt.Errorf("%w: missing required field: village", ErrInvalidContact)
	}
	key, err := phoneKey(c.PhoneNumber)
	if err != nil {
		return Contact{}, err
	}
	if err := c.setOptional(draft.Category, draft.PreferredLanguage); err != nil {
		return Contact{}, err
	}
	if c.Region == "" {
		c.Region = d.region
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, taken := d.phones[key]; taken {
		return Contact{}, fmt.Errorf("%w: %s", ErrDuplicateContact, c.PhoneNumber)
	}
	c.ID = "contact-" + uuid.NewString()
	c.AddedAt = d.now()

	d.contacts[c.ID] = &c
	d.phones[key] = c.ID
	d.order = append([]string{c.ID}, d.order...)
	return c.clone(), nil
}

// setOptional validates the optional enum and email fields
func (c *Contact) setOptional(category Category, lang Language) error {
	if category != "" {
		parsed, err := ParseCategory(string(category))
		if err != nil {
			return err
		}
		c.Category = parsed
	}
	if lang != "" {
		parsed, err := ParseLanguage(string(lang))
		if err != nil {
			return err
		}
		c.PreferredLanguage = parsed
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return fmt.Errorf("%w: invalid email %q", ErrInvalidContact, c.Email)
		}
	}
	if c.AlternatePhone != "" {
		if _, err := phoneKey(c.AlternatePhone); err != nil {
			return fmt.Errorf("%w: invalid alternate phone number format", ErrInvalidContact)
		}
	}
	return nil
}

// Update applies the non-nil fields of u. Nothing changes when any field is
// invalid.
func (d *Directory) Update(id string, u Update) (Contact, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.contacts[id]
	if !ok {
		return Contact{}, fmt.Errorf("%w: %s", ErrContactNotFound, id)
	}
	c := current.clone()

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	setString(&c.Name, u.Name)
	setString(&c.PhoneNumber, u.PhoneNumber)
	setString(&c.AlternatePhone, u.AlternatePhone)
	setString(&c.Email, u.Email)
	setString(&c.Village, u.Village)
	setString(&c.Region, u.Region)
	setString(&c.Notes, u.Notes)
	if u.ReceiveAlerts != nil {
		c.ReceiveAlerts = *u.ReceiveAlerts
	}
	if u.Status != nil {
		status, err := ParseStatus(string(*u.Status))
		if err != nil {
			return Contact{}, err
		}
		c.Status = status
	}

	if c.Name == "" {
		return Contact{}, fmt.Errorf("%w: missing required field: name", ErrInvalidContact)
	}
	if c.Village == "" {
		return Contact{}, fmt.Errorf("%w: missing required field: village", ErrInvalidContact)
	}
	if c.Region == "" {
		c.Region = d.region
	}
	var category Category
	if u.Category != nil {
		category = *u.Category
	}
	var lang Language
	if u.PreferredLanguage != nil {
		lang = *u.PreferredLanguage
	}
	if err := c.setOptional(category, lang); err != nil {
		return Contact{}, err
	}

	oldKey, _ := phoneKey(current.PhoneNumber)
	newKey, err := phoneKey(c.PhoneNumber)
	if err != nil {
		return Contact{}, err
	}
	if owner, taken := d.phones[newKey]; taken && owner != id {
		return Contact{}, fmt.Errorf("%w: %s", ErrDuplicateContact, c.PhoneNumber)
	}
	delete(d.phones, oldKey)
	d.phones[newKey] = id

	*current = c
	return c.clone(), nil
}

// Delete removes one contact
func (d *Directory) Delete(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.remove(id) {
		return fmt.Errorf("%w: %s", ErrContactNotFound, id)
	}
	return nil
}

// BulkDelete removes every listed contact and returns how many existed.
// Unknown ids are skipped.
func (d *Directory) BulkDelete(ids []string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for _, id := range ids {
		if d.remove(id) {
			removed++
		}
	}
	return removed
}

func (d *Directory) remove(id string) bool {
	c, ok := d.contacts[id]
	if !ok {
		return false
	}
	if key, err := phoneKey(c.PhoneNumber); err == nil {
		delete(d.phones, key)
	}
	delete(d.contacts, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns one contact
func (d *Directory) Get(id string) (Contact, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.contacts[id]
	if !ok {
		return Contact{}, fmt.Errorf("%w: %s", ErrContactNotFound, id)
	}
	return c.clone(), nil
}

// List returns contacts matching f, newest first
func (d *Directory) List(f Filter) []Contact {
	query := strings.TrimSpace(f.Query)
	lowerQuery := strings.ToLower(query)
	village := strings.TrimSpace(f.Village)

	d.mu.Lock()
	defer d.mu.Unlock()

	out := []Contact{}
	for _, id := range d.order {
		c := d.contacts[id]
		if f.Category != "" && !strings.EqualFold(string(c.Category), string(f.Category)) {
			continue
		}
		if village != "" && !strings.EqualFold(c.Village, village) {
			continue
		}
		if f.ActiveOnly && !c.Reachable() {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), lowerQuery) &&
			!strings.Contains(c.PhoneNumber, query) &&
			!strings.Contains(strings.ToLower(c.Village), lowerQuery) {
			continue
		}
		out = append(out, c.clone())
	}
	return out
}

// Search matches name, village or phone number
func (d *Directory) Search(query string) []Contact {
	return d.List(Filter{Query: query})
}

// ByCategory returns contacts in one category
func (d *Directory) ByCategory(c Category) []Contact {
	return d.List(Filter{Category: c})
}

// ByVillage returns contacts in one village, matched case-insensitively
func (d *Directory) ByVillage(village string) []Contact {
	return d.List(Filter{Village: village})
}

// Active returns contacts that are active and opted in to alerts
func (d *Directory) Active() []Contact {
	return d.List(Filter{ActiveOnly: true})
}

// Stats counts contacts by status, opt-in and village
func (d *Directory) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	stats := Stats{Total: len(d.contacts), ByVillage: map[string]int{}}
	for _, c := range d.contacts {
		switch c.Status {
		case Active:
			stats.Active++
		case Unverified:
			stats.Unverified++
		}
		if c.ReceiveAlerts {
			stats.Receiving++
		}
		if c.Category == Farmer {
			stats.Farmers++
		}
		if c.Village != "" {
			stats.ByVillage[c.Village]++
		}
	}
	return stats
}

// RecordNotified counts a community alert against every reachable contact
// and returns how many were reached
func (d *Directory) RecordNotified(at time.Time) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	reached := 0
	for _, c := range d.contacts {
		if !c.Reachable() {
			continue
		}
		c.NotificationsSent++
		t := at
		c.LastNotified = &t
		reached++
	}
	return reached
}

func (c *Contact) clone() Contact {
	out := *c
	if c.LastNotified != nil {
		t := *c.LastNotified
		out.LastNotified = &t
	}
	return out
}

// ParseCategory validates a category, case-insensitively
func ParseCategory(s string) (Category, error) {
	up := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, c := range Categories {
		if c == up {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidContact, s)
}

// ParseStatus validates a contact status, case-insensitively
func ParseStatus(s string) (Status, error) {
	up := Status(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range Statuses {
		if st == up {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidContact, s)
}

// ParseLanguage accepts en or sw
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Swahili:
		return Swahili, nil
	}
	return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidContact, s)
}

// phoneKey reduces a phone number to its digits in international form, so
// "0712 345 678" and "+254712345678" are the same contact. Spaces, dashes,
// dots and parentheses are ignored and a leading plus is allowed.
func phoneKey(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: missing required field: phone number", ErrInvalidContact)
	}

	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		default:
			return "", fmt.Errorf("%w: invalid phone number format", ErrInvalidContact)
		}
	}

	digits := b.String()
	if len(digits) == 10 && digits[0] == '0' {
		digits = "254" + digits[1:]
	}
	if len(digits) < 9 || len(digits) > 15 {
		return "", fmt.Errorf("%w: invalid phone number format", ErrInvalidContact)
	}
	return digits, nil
}
