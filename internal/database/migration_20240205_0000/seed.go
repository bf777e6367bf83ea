package migration_20240205_0000

// GWP factors from the IPCC AR4/AR5/AR6 one-table reference (GWP_Table
// sheet): the major greenhouse gases in full plus representative rows
// of every category. Rows where the source gives a bound instead of a
// number carry a nil value and a display string. The loader may upsert
// the remainder of the table.

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

const (
	catMajor    = "Major GHG"
	catHFC      = "Hydrofluorocarbons (includes unsaturated hydrofluorocarbons)*"
	catFF       = "Fully Fluorinated Species"
	catCFC      = "Chlorofluorocarbons"
	catHCFC     = "Hydrochlorofluorocarbon (includes unsaturated species)*"
	catChloro   = "Chlorocarbons and Hydrochlorocarbons"
	catBromo    = "Bromocarbons, Hydrobromocarbons and Halons"
	catHaloMisc = "Halogenated Alcohols, Ethers, Furans, Aldehydes and Ketones"
)

func seedRows() []IpccArGwp {
	return []IpccArGwp{
		{GasName: "Carbon dioxide", ArVersion: "AR4", GwpValue: f(1), Category: s(catMajor)},
		{GasName: "Carbon dioxide", ArVersion: "AR5", GwpValue: f(1), Category: s(catMajor)},
		{GasName: "Carbon dioxide", ArVersion: "AR6", GwpValue: f(1), Category: s(catMajor)},
		{GasName: "Methane – non-fossil", ArVersion: "AR4", GwpValue: f(25), Category: s(catMajor)},
		{GasName: "Methane – non-fossil", ArVersion: "AR5", GwpValue: f(28), Category: s(catMajor)},
		{GasName: "Methane – non-fossil", ArVersion: "AR6", GwpValue: f(27), Category: s(catMajor)},
		{GasName: "Methane – fossil", ArVersion: "AR5", GwpValue: f(30), Category: s(catMajor)},
		{GasName: "Methane – fossil", ArVersion: "AR6", GwpValue: f(29.8), Category: s(catMajor)},
		{GasName: "Nitrous oxide", ArVersion: "AR4", GwpValue: f(298), Category: s(catMajor)},
		{GasName: "Nitrous oxide", ArVersion: "AR5", GwpValue: f(265), Category: s(catMajor)},
		{GasName: "Nitrous oxide", ArVersion: "AR6", GwpValue: f(273), Category: s(catMajor)},
		{GasName: "Nitrogen trifluoride", ArVersion: "AR4", GwpValue: f(17200), Category: s(catMajor)},
		{GasName: "Nitrogen trifluoride", ArVersion: "AR5", GwpValue: f(16100), Category: s(catMajor)},
		{GasName: "Nitrogen trifluoride", ArVersion: "AR6", GwpValue: f(17400), Category: s(catMajor)},
		{GasName: "Sulfur hexafluoride", ArVersion: "AR4", GwpValue: f(22800), Category: s(catMajor)},
		{GasName: "Sulfur hexafluoride", ArVersion: "AR5", GwpValue: f(23500), Category: s(catMajor)},
		{GasName: "Sulfur hexafluoride", ArVersion: "AR6", GwpValue: f(24300), Category: s(catMajor)},

		{GasName: "HFC-23", ArVersion: "AR4", GwpValue: f(14800), Category: s(catHFC)},
		{GasName: "HFC-23", ArVersion: "AR5", GwpValue: f(12400), Category: s(catHFC)},
		{GasName: "HFC-23", ArVersion: "AR6", GwpValue: f(14600), Category: s(catHFC)},
		{GasName: "HFC-32", ArVersion: "AR4", GwpValue: f(675), Category: s(catHFC)},
		{GasName: "HFC-32", ArVersion: "AR5", GwpValue: f(677), Category: s(catHFC)},
		{GasName: "HFC-32", ArVersion: "AR6", GwpValue: f(771), Category: s(catHFC)},
		{GasName: "HFC-125", ArVersion: "AR4", GwpValue: f(3500), Category: s(catHFC)},
		{GasName: "HFC-125", ArVersion: "AR5", GwpValue: f(3170), Category: s(catHFC)},
		{GasName: "HFC-125", ArVersion: "AR6", GwpValue: f(3740), Category: s(catHFC)},
		{GasName: "HFC-134a", ArVersion: "AR4", GwpValue: f(1430), Category: s(catHFC)},
		{GasName: "HFC-134a", ArVersion: "AR5", GwpValue: f(1300), Category: s(catHFC)},
		{GasName: "HFC-134a", ArVersion: "AR6", GwpValue: f(1530), Category: s(catHFC)},
		{GasName: "HFC-152a", ArVersion: "AR4", GwpValue: f(124), Category: s(catHFC)},
		{GasName: "HFC-152a", ArVersion: "AR5", GwpValue: f(138), Category: s(catHFC)},
		{GasName: "HFC-152a", ArVersion: "AR6", GwpValue: f(164), Category: s(catHFC)},
		{GasName: "HFO-1132a", ArVersion: "AR5", GwpDisplay: s("<1"), Category: s(catHFC)},
		{GasName: "HFO-1132a", ArVersion: "AR6", GwpValue: f(0.052), Category: s(catHFC)},
		{GasName: "HFO-1234yf", ArVersion: "AR5", GwpDisplay: s("<1"), Category: s(catHFC)},
		{GasName: "HFO-1234yf", ArVersion: "AR6", GwpValue: f(0.501), Category: s(catHFC)},
		{GasName: "HFO-1234ze(E)", ArVersion: "AR5", GwpDisplay: s("<1"), Category: s(catHFC)},
		{GasName: "HFO-1234ze(E)", ArVersion: "AR6", GwpValue: f(1.37), Category: s(catHFC)},

		{GasName: "PFC-14", ArVersion: "AR4", GwpValue: f(7390), Category: s(catFF)},
		{GasName: "PFC-14", ArVersion: "AR5", GwpValue: f(6630), Category: s(catFF)},
		{GasName: "PFC-14", ArVersion: "AR6", GwpValue: f(7380), Category: s(catFF)},
		{GasName: "PFC-116", ArVersion: "AR4", GwpValue: f(12200), Category: s(catFF)},
		{GasName: "PFC-116", ArVersion: "AR5", GwpValue: f(11100), Category: s(catFF)},
		{GasName: "PFC-116", ArVersion: "AR6", GwpValue: f(12400), Category: s(catFF)},
		{GasName: "PFC-c216", ArVersion: "AR4", GwpValue: f(17340), GwpDisplay: s(">17,340"), Category: s(catFF)},
		{GasName: "PFC-c216", ArVersion: "AR5", GwpValue: f(9200), Category: s(catFF)},
		{GasName: "Sulfuryl fluoride", ArVersion: "AR5", GwpValue: f(4090), Category: s(catFF)},
		{GasName: "Sulfuryl fluoride", ArVersion: "AR6", GwpValue: f(4630), Category: s(catFF)},

		{GasName: "CFC-11", ArVersion: "AR4", GwpValue: f(4750), Category: s(catCFC)},
		{GasName: "CFC-11", ArVersion: "AR5", GwpValue: f(4660), Category: s(catCFC)},
		{GasName: "CFC-11", ArVersion: "AR6", GwpValue: f(6230), Category: s(catCFC)},
		{GasName: "CFC-12", ArVersion: "AR4", GwpValue: f(10900), Category: s(catCFC)},
		{GasName: "CFC-12", ArVersion: "AR5", GwpValue: f(10200), Category: s(catCFC)},
		{GasName: "CFC-12", ArVersion: "AR6", GwpValue: f(12500), Category: s(catCFC)},

		{GasName: "HCFC-22", ArVersion: "AR4", GwpValue: f(1810), Category: s(catHCFC)},
		{GasName: "HCFC-22", ArVersion: "AR5", GwpValue: f(1760), Category: s(catHCFC)},
		{GasName: "HCFC-22", ArVersion: "AR6", GwpValue: f(1960), Category: s(catHCFC)},
		{GasName: "HCFC-141b", ArVersion: "AR4", GwpValue: f(725), Category: s(catHCFC)},
		{GasName: "HCFC-141b", ArVersion: "AR5", GwpValue: f(782), Category: s(catHCFC)},
		{GasName: "HCFC-141b", ArVersion: "AR6", GwpValue: f(860), Category: s(catHCFC)},

		{GasName: "Methyl chloroform", ArVersion: "AR4", GwpValue: f(146), Category: s(catChloro)},
		{GasName: "Methyl chloroform", ArVersion: "AR5", GwpValue: f(160), Category: s(catChloro)},
		{GasName: "Methyl chloroform", ArVersion: "AR6", GwpValue: f(161), Category: s(catChloro)},
		{GasName: "Carbon tetrachloride", ArVersion: "AR4", GwpValue: f(1400), Category: s(catChloro)},
		{GasName: "Carbon tetrachloride", ArVersion: "AR5", GwpValue: f(1730), Category: s(catChloro)},
		{GasName: "Carbon tetrachloride", ArVersion: "AR6", GwpValue: f(2200), Category: s(catChloro)},

		{GasName: "Methyl bromide", ArVersion: "AR4", GwpValue: f(5), Category: s(catBromo)},
		{GasName: "Methyl bromide", ArVersion: "AR5", GwpValue: f(2), Category: s(catBromo)},
		{GasName: "Methyl bromide", ArVersion: "AR6", GwpValue: f(2.43), Category: s(catBromo)},
		{GasName: "Halon-1301", ArVersion: "AR4", GwpValue: f(7140), Category: s(catBromo)},
		{GasName: "Halon-1301", ArVersion: "AR5", GwpValue: f(6290), Category: s(catBromo)},
		{GasName: "Halon-1301", ArVersion: "AR6", GwpValue: f(7200), Category: s(catBromo)},

		{GasName: "HFE-125", ArVersion: "AR4", GwpValue: f(14900), Category: s(catHaloMisc)},
		{GasName: "HFE-125", ArVersion: "AR5", GwpValue: f(12400), Category: s(catHaloMisc)},
		{GasName: "HFE-125", ArVersion: "AR6", GwpValue: f(14300), Category: s(catHaloMisc)},
		{GasName: "PFPMIE", ArVersion: "AR4", GwpValue: f(10300), Category: s(catHaloMisc)},
		{GasName: "PFPMIE", ArVersion: "AR5", GwpValue: f(9710), Category: s(catHaloMisc)},
		{GasName: "PFPMIE", ArVersion: "AR6", GwpValue: f(10300), Category: s(catHaloMisc)},
	}
}
