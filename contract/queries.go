package contract

import (
	"container/heap"
	"strconv"
	"strings"

	"donation_box/sdk"
)

const (
	// DefaultDonationsPageSize caps get_donations pages when no limit is given.
	DefaultDonationsPageSize = 50
	// TopDonorsLimit is the size of the get_top_five_donors ranking.
	TopDonorsLimit = 5
)

// DonationView is the wire shape of one donor record.
type DonationView struct {
	AccountId string
	Amount    string
}

// campaignOrEmpty lets queries run before contract_init without failing.
func campaignOrEmpty() *CampaignConfig {
	if cfg := loadCampaignConfig(); cfg != nil {
		return cfg
	}
	return &CampaignConfig{}
}

// GetBeneficiary returns the configured recipient of forwarded funds.
func GetBeneficiary() *string {
	return strptr(campaignOrEmpty().Beneficiary.String())
}

// BeneficiaryName returns the beneficiary display name.
func BeneficiaryName() *string {
	return strptr(campaignOrEmpty().BeneficiaryName)
}

// GetDescription returns the campaign description.
func GetDescription() *string {
	return strptr(campaignOrEmpty().Description)
}

// NumberOfDonors returns the ledger cardinality as a decimal string.
func NumberOfDonors() *string {
	return strptr(strconv.FormatUint(donorCount(), 10))
}

// GetDonationForAccount returns the cumulative amount for one account,
// zero for accounts the ledger has never seen. Never fails.
// Payload: {"account_id":"hive:alice"}
func GetDonationForAccount(payload *string) *string {
	account, err := decodeAccountArg(unwrapPayload(payload, "account payload required"))
	if err != nil {
		fail(ErrInvalidPayload, "invalid account payload: "+err.Error())
	}
	amount := getDonation(sdk.Address(account))
	return strptr(encodeDonationView(DonationView{
		AccountId: account,
		Amount:    amount.String(),
	}))
}

// GetDonations returns a page of donor records in first-insertion order.
// A from_index beyond the ledger yields an empty list, never an error.
// Payload (optional): {"from_index":0,"limit":50}
func GetDonations(payload *string) *string {
	from, limit := uint64(0), uint64(DefaultDonationsPageSize)
	if payload != nil {
		if raw := strings.TrimSpace(*payload); raw != "" && raw != "null" {
			var err error
			from, limit, err = decodeDonationsQuery(raw)
			if err != nil {
				fail(ErrInvalidPayload, "invalid donations payload: "+err.Error())
			}
		}
	}

	ids := donorIndex()
	total := uint64(len(ids))
	if from > total {
		from = total
	}
	end := from + limit
	if end > total || end < from {
		end = total
	}

	page := make([]DonationView, 0, end-from)
	for _, id := range ids[from:end] {
		page = append(page, DonationView{
			AccountId: id,
			Amount:    getDonation(sdk.Address(id)).String(),
		})
	}
	return strptr(encodeDonationList(page))
}

// GetTotalDonated returns the campaign-wide running total as a decimal string.
// The counter is kept incrementally; by invariant it always equals the sum of
// every ledger entry.
func GetTotalDonated() *string {
	return strptr(loadTotalDonated().String())
}

// rankedDonor pairs a ledger entry with its insertion position for tie breaks.
type rankedDonor struct {
	account string
	amount  Amount
	pos     int
}

// bottomHeap is a min-heap keyed worst-first: smallest amount at the root and,
// on equal amounts, the later-inserted donor. Evicting the root therefore
// always drops the weakest candidate while earlier donors win ties.
type bottomHeap []rankedDonor

func (h bottomHeap) Len() int { return len(h) }

func (h bottomHeap) Less(i, j int) bool {
	if c := h[i].amount.Cmp(h[j].amount); c != 0 {
		return c < 0
	}
	return h[i].pos > h[j].pos
}

func (h bottomHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *bottomHeap) Push(x any) { *h = append(*h, x.(rankedDonor)) }

func (h *bottomHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// GetTopFiveDonors returns up to five donors with the largest cumulative
// amounts, descending; ties rank the earlier-inserted donor first. Runs a
// bounded min-heap so large ledgers stay O(n log 5).
func GetTopFiveDonors() *string {
	h := &bottomHeap{}
	heap.Init(h)
	for pos, id := range donorIndex() {
		heap.Push(h, rankedDonor{
			account: id,
			amount:  getDonation(sdk.Address(id)),
			pos:     pos,
		})
		if h.Len() > TopDonorsLimit {
			heap.Pop(h)
		}
	}

	top := make([]DonationView, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		d := heap.Pop(h).(rankedDonor)
		top[i] = DonationView{AccountId: d.account, Amount: d.amount.String()}
	}
	return strptr(encodeDonationList(top))
}

// GetDonationStatistics returns donor count, total and the floored average
// donation; the average is zero for an empty ledger instead of dividing by it.
func GetDonationStatistics() *string {
	donors := donorCount()
	total := loadTotalDonated()
	average := ZeroAmount()
	if donors > 0 {
		average = total.DivUint64(donors)
	}
	return strptr(encodeStats(donors, total, average))
}

// GetCampaign returns the whole public campaign snapshot in one call.
func GetCampaign() *string {
	return strptr(encodeCampaignView(campaignOrEmpty(), donorCount(), loadTotalDonated()))
}
