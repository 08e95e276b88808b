package refdata

// domesticSectors maps B3 tickers to their sector classification.
// Used when no live provider supplies a sector for a domestic instrument.
var domesticSectors = map[string]string{
	// Financial services
	"ITUB4": "Financial Services", "ITUB3": "Financial Services",
	"BBDC4": "Financial Services", "BBDC3": "Financial Services",
	"SANB11": "Financial Services", "SANB3": "Financial Services",
	"BBAS3": "Financial Services", "ABCB4": "Financial Services",
	"ITSA4": "Financial Services", "ITSA3": "Financial Services",
	"FESA4": "Financial Services", "FESA3": "Financial Services",
	"ISAE4": "Financial Services",

	// Energy
	"PETR4": "Energy", "PETR3": "Energy", "PRIO3": "Energy",
	"3R11": "Energy", "RRRP3": "Energy", "VBBR3": "Energy",

	// Mining and materials
	"VALE3": "Materials", "CSNA3": "Materials", "USIM5": "Materials",
	"GGBR4": "Materials", "GGBR3": "Materials", "CSAN3": "Materials",
	"GOAU4": "Materials",

	// Utilities
	"EGIE3": "Utilities", "CPLE6": "Utilities", "CPLE3": "Utilities",
	"ELET3": "Utilities", "ELET6": "Utilities", "ENBR3": "Utilities",
	"UNIP6": "Utilities", "UNIP3": "Utilities",

	// Real estate
	"VAMO3": "Real Estate", "BRML3": "Real Estate", "CYRE3": "Real Estate",
	"JHSF3": "Real Estate", "MULT3": "Real Estate", "BRPR3": "Real Estate",

	// Consumer staples
	"ABEV3": "Consumer Staples", "JBSS3": "Consumer Staples",
	"MRFG3": "Consumer Staples", "RADL3": "Consumer Staples",

	// Technology
	"TOTS3": "Technology", "LWSA3": "Technology", "POSI3": "Technology",

	// Telecommunications
	"VIVT3": "Telecommunications", "VIVT4": "Telecommunications",
	"TIMS3": "Telecommunications", "OIBR3": "Telecommunications",

	// Healthcare
	"PSSA3": "Healthcare", "RDOR3": "Healthcare", "QUAL3": "Healthcare",

	// Industrials
	"WEGE3": "Industrials", "EMBR3": "Industrials", "RENT3": "Industrials",
	"SAPR4": "Industrials", "SAPR3": "Industrials", "EZTC3": "Industrials",

	// Retail
	"MGLU3": "Consumer Discretionary", "LREN3": "Consumer Discretionary",
	"VVAR3": "Consumer Discretionary", "AMER3": "Consumer Discretionary",
}

// foreignSectors maps US tickers (stocks and ETFs) to their sector
// classification.
var foreignSectors = map[string]string{
	"AAPL": "Technology", "MSFT": "Technology", "GOOGL": "Technology",
	"AMZN": "Consumer Discretionary", "TSLA": "Consumer Discretionary",
	"META": "Technology", "NVDA": "Technology", "NFLX": "Communication Services",
	"JPM": "Financial Services", "BAC": "Financial Services",
	"WMT": "Consumer Staples", "PG": "Consumer Staples",
	"JNJ": "Healthcare", "PFE": "Healthcare", "UNH": "Healthcare",
	"XOM": "Energy", "CVX": "Energy", "COP": "Energy",
	"KO": "Consumer Staples", "PEP": "Consumer Staples",
	"DIS": "Communication Services", "CMCSA": "Communication Services",
	"WBD":   "Communication Services", // Warner Bros Discovery
	"LIT":   "Technology",             // Global X Lithium & Battery Tech ETF
	"TLT":   "Financial Services",     // iShares 20+ Year Treasury Bond ETF
	"QQQ":   "Technology",             // Invesco QQQ Trust
	"SOXX":  "Technology",             // iShares Semiconductor ETF
	"VNQ":   "Real Estate",            // Vanguard Real Estate ETF
	"SGOV":  "Financial Services",     // iShares 0-3 Month Treasury Bond ETF
	"BRK.B": "Financial Services",     // Berkshire Hathaway Class B
	"XLE":   "Energy",                 // Energy Select Sector SPDR Fund
	"XLV":   "Healthcare",             // Health Care Select Sector SPDR Fund
	"HDV":   "Consumer Staples",       // iShares Core High Dividend ETF
	"LTC":   "Real Estate",            // LTC Properties (REIT)
	"CQQQ":  "Technology",             // Invesco China Technology ETF
	"APPS":  "Technology",             // Digital Turbine
}
