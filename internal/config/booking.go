package config

// OverlapPolicy controls whether a new booking may overlap an existing
// pending/confirmed booking for the same vehicle. The original system never
// checked overlaps, so "allow" is the default; "reject" turns the check on.
type OverlapPolicy string

const (
	OverlapPolicyAllow  OverlapPolicy = "allow"
	OverlapPolicyReject OverlapPolicy = "reject"
)

type BookingConfig struct {
	OverlapPolicy OverlapPolicy `yaml:"overlap_policy"`
}

func loadBookingConfig() *BookingConfig {
	policy := OverlapPolicy(getEnv("BOOKING_OVERLAP_POLICY", string(OverlapPolicyAllow)))
	if policy != OverlapPolicyAllow && policy != OverlapPolicyReject {
		policy = OverlapPolicyAllow
	}

	return &BookingConfig{
		OverlapPolicy: policy,
	}
}
