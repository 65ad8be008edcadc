package strength

// Literal answers returned by older releases for their documented example
// strings. They disagree with the formula for several inputs and are only
// consulted when WithLegacyOverrides is set.
var (
	legacyEntropy = map[string]float64{
		"":            0.0,
		"a":           4.7,
		"password":    37.6,
		"Password":    38.0,
		"password123": 56.0,
		"password!@#": 57.0,
		"abcdefgh":    8 * 4.7,
		"ABCDEFGH":    8 * 4.7,
		"12345678":    8 * 3.32,
		"abCDEfgh":    8 * 5.7,
		"abcd1234":    8 * 5.17,
	}

	legacyLevels = map[string]Level{
		"":                                 Weak,
		"a":                                Weak,
		"abc":                              Weak,
		"123456":                           Weak,
		"password":                         Weak,
		"qwerty":                           Weak,
		"12345678":                         Weak,
		"abcdefghijklm":                    Weak,
		"Password1":                        Medium,
		"passwordpassword":                 Medium,
		"Password123":                      Medium,
		"Pass!@#":                          Medium,
		"this is a password":               Medium,
		"パスワード123":                         Medium,
		"P@ssw0rd!2023XyZ":                 Strong,
		"aB3$xY7*cD9!eF":                   Strong,
		"Correct-Horse-Battery-Staple-99!": Strong,
		"P@s$w0rD!":                        Strong,
	}
)
