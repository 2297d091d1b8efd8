package catalog

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// CaseDraft is the new-case form. Drafts are validated and acknowledged,
// never stored.
type CaseDraft struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Reward      int64  `json:"reward"`
}

// TipDraft is the tip submission form.
type TipDraft struct {
	CaseID      string `json:"case_id"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Normalize trims the draft and checks required fields.
func (d CaseDraft) Normalize() (CaseDraft, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Location = strings.TrimSpace(d.Location)
	d.Description = strings.TrimSpace(d.Description)
	switch {
	case d.Name == "":
		return CaseDraft{}, fmt.Errorf("%w: name is required", ErrInvalidDraft)
	case d.Age <= 0 || d.Age > 130:
		return CaseDraft{}, fmt.Errorf("%w: age must be between 1 and 130", ErrInvalidDraft)
	case d.Location == "":
		return CaseDraft{}, fmt.Errorf("%w: location is required", ErrInvalidDraft)
	case d.Reward < 0:
		return CaseDraft{}, fmt.Errorf("%w: reward must be >= 0", ErrInvalidDraft)
	}
	return d, nil
}

// Normalize trims the draft and checks required fields.
func (d TipDraft) Normalize() (TipDraft, error) {
	d.CaseID = strings.TrimSpace(d.CaseID)
	d.Description = strings.TrimSpace(d.Description)
	d.Location = strings.TrimSpace(d.Location)
	if d.CaseID == "" {
		return TipDraft{}, fmt.Errorf("%w: case_id is required", ErrInvalidDraft)
	}
	if d.Description == "" {
		return TipDraft{}, fmt.Errorf("%w: description is required", ErrInvalidDraft)
	}
	return d, nil
}

// Digest fingerprints the normalized draft in the 0x-prefixed form of the
// record hashes.
func (d CaseDraft) Digest() string {
	return digest("case", d.Name, strconv.Itoa(d.Age), d.Location, d.Description, strconv.FormatInt(d.Reward, 10))
}

// Digest fingerprints the normalized draft.
func (d TipDraft) Digest() string {
	return digest("tip", d.CaseID, d.Description, d.Location)
}

// digest hashes each part behind its length, so no choice of field
// contents can shift bytes from one field into the next.
func digest(parts ...string) string {
	h, _ := blake2b.New256(nil) // only fails for keys longer than 64 bytes
	var n [binary.MaxVarintLen64]byte
	for _, p := range parts {
		h.Write(n[:binary.PutUvarint(n[:], uint64(len(p)))])
		h.Write([]byte(p))
	}
	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// ResolveTipTarget checks that the tip references a case seeking tips.
func ResolveTipTarget(ctx context.Context, svc Service, caseID string) (TipTarget, error) {
	targets, err := svc.TipTargets(ctx)
	if err != nil {
		return TipTarget{}, err
	}
	for _, t := range targets {
		if t.ID == caseID {
			return t, nil
		}
	}
	return TipTarget{}, fmt.Errorf("%w: %s", ErrUnknownCase, caseID)
}
