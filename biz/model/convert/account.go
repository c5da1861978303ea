package convert

import (
	"stock_tracker/be/biz/model/domain"
	"stock_tracker/be/biz/model/storage"
)

func AccountDomainToRecord(a *domain.Account) *storage.AccountRecord {
	if a == nil {
		return nil
	}
	return &storage.AccountRecord{
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Holdings:     HoldingsDomainToRecords(a.Holdings),
	}
}

func AccountRecordToDomain(m *storage.AccountRecord) *domain.Account {
	if m == nil {
		return nil
	}
	return &domain.Account{
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Holdings:     HoldingRecordsToDomain(m.Holdings),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func HoldingsDomainToRecords(hs []domain.Holding) []storage.HoldingRecord {
	if hs == nil {
		return nil
	}
	records := make([]storage.HoldingRecord, 0, len(hs))
	for _, h := range hs {
		records = append(records, storage.HoldingRecord{
			Symbol: h.Symbol,
			Units:  h.Units,
		})
	}
	return records
}

func HoldingRecordsToDomain(ms []storage.HoldingRecord) []domain.Holding {
	holdings := make([]domain.Holding, 0, len(ms))
	for _, m := range ms {
		holdings = append(holdings, domain.Holding{
			Symbol: m.Symbol,
			Units:  m.Units,
		})
	}
	return holdings
}
