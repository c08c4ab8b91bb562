// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journals

// behaviorJournals is the built-in set of top economics, finance and
// behavioral-economics journals.
var behaviorJournals = []Journal{
	{Name: "American Economic Review", ISSN: "0002-8282"},
	{Name: "Quarterly Journal of Economics", ISSN: "0033-5533"},
	{Name: "Journal of Political Economy", ISSN: "0022-3808"},
	{Name: "Econometrica", ISSN: "0012-9682"},
	{Name: "Review of Economic Studies", ISSN: "0034-6527"},
	{Name: "Journal of Finance", ISSN: "0022-1082"},
	{Name: "Journal of Financial Economics", ISSN: "0304-405X"},
	{Name: "Review of Financial Studies", ISSN: "0893-9454"},
	{Name: "Journal of Economic Behavior & Organization", ISSN: "0167-2681"},
	{Name: "Journal of Economic Psychology", ISSN: "0167-4870"},
	{Name: "Journal of Behavioral Decision Making", ISSN: "0894-3257"},
}

// Default returns the built-in journal directory.
func Default() Directory {
	d, err := New(behaviorJournals)
	if err != nil {
		panic("journals: invalid built-in table: " + err.Error())
	}
	return d
}
