package configs

// Sim holds the default parameters applied to series generation requests
// that leave campaign or day counts unset. The defaults mirror a typical
// quarter of data for a small account: 6 campaigns over 90 days.
type Sim struct {
	// Campaigns is the default number of campaigns to synthesise.
	Campaigns int `env:"CAMPAIGNS" envDefault:"6"`
	// Days is the default series length per campaign.
	Days int `env:"DAYS" envDefault:"90"`
}
