package refdata

// domesticDividendYields maps B3 tickers to their approximate annual
// dividend yield in percent. Last-resort values for when no provider
// reports a yield.
var domesticDividendYields = map[string]float64{
	"ITUB4": 8.5, "ITUB3": 8.5, // Itaú
	"BBDC4": 7.2, "BBDC3": 7.2, // Bradesco
	"VALE3": 6.8, // Vale
	"PETR4": 5.5, "PETR3": 5.5, // Petrobras
	"ABEV3": 4.2, // Ambev
	"WEGE3": 3.8, // WEG
	"MGLU3": 2.1, // Magazine Luiza
	"VIVT3": 3.5, // Vivo
	"EGIE3": 4.8, // Engie Brasil
	"CPLE6": 5.2, "CPLE3": 5.2, // Copel
	"UNIP6": 4.1, "UNIP3": 4.1, // Unipar
	"PSSA3": 2.8, // Porto Seguro
	"SAPR4": 3.2, "SAPR3": 3.2, // Sanepar
	"VBBR3": 6.5, // Vibra
	"CSAN3": 4.5, // Cosan
	"ISAE4": 5.8, // ISA Energia
	"GOAU4": 3.9, // Gerdau
	"FESA4": 6.2, "FESA3": 6.2, // Ferbasa
	"ITSA4": 7.8, "ITSA3": 7.8, // Itaúsa
	"SANB11": 6.05, // Santander
	"PRIO3":  0.0,  // PetroRio pays no regular dividend
	"VAMO3":  0.0,  // Vamos pays no regular dividend

	// Listed real-estate funds (FIIs)
	"VISC11": 8.84,  // Vinci Shopping Centers
	"HGLG11": 8.23,  // CSHG Logística
	"HGRU11": 9.96,  // CSHG Renda Urbana
	"BTLG11": 9.10,  // BTG Pactual Logística
	"KNCR11": 13.20, // Kinea Renda Imobiliária
	"XPLG11": 9.72,  // XP Log
	"MXRF11": 12.03, // Maxi Renda
	"RZTR11": 13.65, // Riza Terrax
	"HCTR11": 17.25, // Hectare CE
	"CPTI11": 14.61, // Capitania Securities II
}

// foreignDividendYields maps US tickers to their approximate annual
// dividend yield in percent.
var foreignDividendYields = map[string]float64{
	"AAPL": 0.5, "MSFT": 0.7, "GOOGL": 0.0,
	"AMZN": 0.0, "TSLA": 0.0, "META": 0.0,
	"NVDA": 0.1, "NFLX": 0.0, "JPM": 2.5,
	"BAC": 2.8, "WMT": 1.4, "PG": 2.5,
	"PFE": 3.2, "UNH": 1.4,
	"XOM": 3.1, "CVX": 3.8, "COP": 1.2,
	"KO": 3.0, "PEP": 2.7,
	"DIS":   0.65, // Disney
	"WBD":   0.0,  // Warner Bros Discovery
	"LIT":   1.15, // Global X Lithium & Battery Tech ETF
	"TLT":   3.34, // iShares 20+ Year Treasury Bond ETF
	"QQQ":   0.57, // Invesco QQQ Trust
	"SOXX":  0.63, // iShares Semiconductor ETF
	"VNQ":   3.91, // Vanguard Real Estate ETF
	"SGOV":  4.14, // iShares 0-3 Month Treasury Bond ETF
	"BRK.B": 3.34, // Berkshire Hathaway Class B
	"CMCSA": 3.28, // Comcast
	"XLE":   3.27, // Energy Select Sector SPDR Fund
	"XLV":   1.63, // Health Care Select Sector SPDR Fund
	"HDV":   3.67, // iShares Core High Dividend ETF
	"JNJ":   3.45, // Johnson & Johnson
	"LTC":   6.33, // LTC Properties (REIT)
	"CQQQ":  0.27, // Invesco China Technology ETF
	"APPS":  0.0,  // Digital Turbine
}
