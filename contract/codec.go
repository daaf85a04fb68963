package contract

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

////////////////////////////////////////////////////////////////////////////////
// JSON codecs
//
// Hand-written tinyjson streaming codecs: reflection-free, so they stay cheap
// inside the wasm runtime. Amounts always travel as decimal strings.
////////////////////////////////////////////////////////////////////////////////

// decodeInitArgs reads the contract_init payload.
// Shape: {"beneficiary":"hive:bob","beneficiary_name":"Bob","description":"...","asset":"hive"}
func decodeInitArgs(data string) (*InitArgs, error) {
	in := jlexer.Lexer{Data: []byte(data)}
	args := &InitArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "beneficiary":
			args.Beneficiary = in.String()
		case "beneficiary_name":
			args.BeneficiaryName = in.String()
		case "description":
			args.Description = in.String()
		case "asset":
			args.Asset = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return nil, err
	}
	return args, nil
}

// decodeBeneficiaryArgs reads the change_beneficiary payload (same shape as
// init minus the asset, which is fixed for the campaign's lifetime).
func decodeBeneficiaryArgs(data string) (*BeneficiaryArgs, error) {
	in := jlexer.Lexer{Data: []byte(data)}
	args := &BeneficiaryArgs{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "beneficiary":
			args.Beneficiary = in.String()
		case "beneficiary_name":
			args.BeneficiaryName = in.String()
		case "description":
			args.Description = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return nil, err
	}
	return args, nil
}

// decodeAccountArg reads {"account_id":"hive:alice"}.
func decodeAccountArg(data string) (string, error) {
	in := jlexer.Lexer{Data: []byte(data)}
	var account string
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "account_id":
			account = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if err := in.Error(); err != nil {
		return "", err
	}
	return account, nil
}

// decodeDonationsQuery reads the optional {"from_index":N,"limit":L} page
// request, keeping the documented defaults for missing fields.
func decodeDonationsQuery(data string) (from uint64, limit uint64, err error) {
	from = 0
	limit = DefaultDonationsPageSize
	in := jlexer.Lexer{Data: []byte(data)}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "from_index":
			from = in.Uint64()
		case "limit":
			limit = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if e := in.Error(); e != nil {
		return 0, 0, e
	}
	return from, limit, nil
}

// writeDonationView emits one {"account_id":...,"amount":...} object.
func writeDonationView(out *jwriter.Writer, v DonationView) {
	out.RawByte('{')
	out.RawString(`"account_id":`)
	out.String(v.AccountId)
	out.RawByte(',')
	out.RawString(`"amount":`)
	out.String(v.Amount)
	out.RawByte('}')
}

// encodeDonationView renders a single donor record.
func encodeDonationView(v DonationView) string {
	out := jwriter.Writer{}
	writeDonationView(&out, v)
	return writerToString(&out)
}

// encodeDonationList renders an ordered list of donor records.
func encodeDonationList(list []DonationView) string {
	out := jwriter.Writer{}
	out.RawByte('[')
	for i, v := range list {
		if i > 0 {
			out.RawByte(',')
		}
		writeDonationView(&out, v)
	}
	out.RawByte(']')
	return writerToString(&out)
}

// encodeStats renders the get_donation_statistics result.
func encodeStats(totalDonors uint64, totalDonated Amount, average Amount) string {
	out := jwriter.Writer{}
	out.RawByte('{')
	out.RawString(`"total_donors":`)
	out.Uint64(totalDonors)
	out.RawByte(',')
	out.RawString(`"total_donated":`)
	out.String(totalDonated.String())
	out.RawByte(',')
	out.RawString(`"average_donation":`)
	out.String(average.String())
	out.RawByte('}')
	return writerToString(&out)
}

// encodeCampaignView renders the full public campaign snapshot.
func encodeCampaignView(cfg *CampaignConfig, totalDonors uint64, totalDonated Amount) string {
	out := jwriter.Writer{}
	out.RawByte('{')
	out.RawString(`"beneficiary":`)
	out.String(cfg.Beneficiary.String())
	out.RawByte(',')
	out.RawString(`"beneficiary_name":`)
	out.String(cfg.BeneficiaryName)
	out.RawByte(',')
	out.RawString(`"description":`)
	out.String(cfg.Description)
	out.RawByte(',')
	out.RawString(`"asset":`)
	out.String(cfg.Asset.String())
	out.RawByte(',')
	out.RawString(`"total_donors":`)
	out.Uint64(totalDonors)
	out.RawByte(',')
	out.RawString(`"total_donated":`)
	out.String(totalDonated.String())
	out.RawByte('}')
	return writerToString(&out)
}

// encodeCampaignConfig serializes the persisted campaign record.
func encodeCampaignConfig(cfg *CampaignConfig) string {
	out := jwriter.Writer{}
	out.RawByte('{')
	out.RawString(`"controller":`)
	out.String(cfg.Controller.String())
	out.RawByte(',')
	out.RawString(`"beneficiary":`)
	out.String(cfg.Beneficiary.String())
	out.RawByte(',')
	out.RawString(`"beneficiary_name":`)
	out.String(cfg.BeneficiaryName)
	out.RawByte(',')
	out.RawString(`"description":`)
	out.String(cfg.Description)
	out.RawByte(',')
	out.RawString(`"asset":`)
	out.String(cfg.Asset.String())
	out.RawByte('}')
	return writerToString(&out)
}

// decodeCampaignConfig restores the persisted campaign record, nil on garbage.
func decodeCampaignConfig(data string) *CampaignConfig {
	in := jlexer.Lexer{Data: []byte(data)}
	cfg := &CampaignConfig{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "controller":
			cfg.Controller = addressField(in.String())
		case "beneficiary":
			cfg.Beneficiary = addressField(in.String())
		case "beneficiary_name":
			cfg.BeneficiaryName = in.String()
		case "description":
			cfg.Description = in.String()
		case "asset":
			cfg.Asset = assetField(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	in.Consumed()
	if in.Error() != nil {
		return nil
	}
	return cfg
}

// encodeStringList serializes the donor index as a plain JSON array.
func encodeStringList(list []string) string {
	out := jwriter.Writer{}
	out.RawByte('[')
	for i, s := range list {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(s)
	}
	out.RawByte(']')
	return writerToString(&out)
}

// decodeStringList restores the donor index, empty on garbage.
func decodeStringList(data string) []string {
	in := jlexer.Lexer{Data: []byte(data)}
	list := []string{}
	in.Delim('[')
	for !in.IsDelim(']') {
		list = append(list, in.String())
		in.WantComma()
	}
	in.Delim(']')
	in.Consumed()
	if in.Error() != nil {
		return []string{}
	}
	return list
}

// writerToString flushes a jwriter buffer; encode-side errors cannot occur for
// the value types above, so a failure means a programming bug.
func writerToString(out *jwriter.Writer) string {
	data, err := out.BuildBytes()
	if err != nil {
		fail(ErrInvalidPayload, "failed to build json: "+err.Error())
	}
	return string(data)
}
