package models

// Allowed-value sets for the registry's classification fields. The value
// lists originate in the LGU database schema; the validation layer treats
// them as opaque enumerations and never interprets individual values.

var (
	SexValues = []string{"male", "female"}

	CivilStatusValues = []string{
		"single", "married", "widowed", "separated", "annulled", "cohabiting",
	}

	BloodTypeValues = []string{
		"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-", "unknown",
	}

	CitizenshipValues = []string{
		"filipino", "dual_citizen", "foreign_national",
	}

	ReligionValues = []string{
		"roman_catholic", "islam", "iglesia_ni_cristo", "protestant",
		"evangelical", "aglipayan", "seventh_day_adventist", "bible_baptist",
		"jehovahs_witness", "buddhist", "hindu", "tribal_religion",
		"none", "other",
	}

	EthnicityValues = []string{
		"tagalog", "cebuano", "ilocano", "bisaya", "hiligaynon", "bikol",
		"waray", "kapampangan", "pangasinense", "maranao", "maguindanao",
		"tausug", "ibanag", "ivatan", "subanen", "indigenous_people", "other",
	}

	EducationLevelValues = []string{
		"no_formal_education", "elementary", "elementary_graduate",
		"high_school", "high_school_graduate", "vocational",
		"college", "college_graduate", "postgraduate",
	}

	EmploymentStatusValues = []string{
		"employed", "self_employed", "unemployed", "student", "retired", "homemaker",
	}

	IncomeClassValues = []string{
		"poor", "low_income", "lower_middle", "middle", "upper_middle", "upper", "rich",
	}

	EncoderRoleValues = []string{"encoder", "admin"}
)
