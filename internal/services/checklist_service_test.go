package services

import (
	"testing"
	"time"

	"github.com/leosaloa/controle-gastos/internal/models"
	"github.com/leosaloa/controle-gastos/internal/testutil"
)

func TestBuildChecklist(t *testing.T) {
	t.Run("filters_fixed_expenses_by_method_and_cycle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))
		cycle := testutil.CreateTestCycle(t, db,
			testutil.Date(2026, time.January, 1), testutil.Date(2026, time.January, 31), true)
		other := testutil.CreateTestCycle(t, db,
			testutil.Date(2026, time.February, 1), testutil.Date(2026, time.February, 28), false)

		debit := testutil.CreateTestFixedExpense(t, db, cycle.ID, models.PaymentMethodDebit)
		testutil.CreateTestFixedExpense(t, db, cycle.ID, models.PaymentMethodCredit)
		testutil.CreateTestFixedExpense(t, db, other.ID, models.PaymentMethodDebit)

		list, err := svc.BuildChecklist(cycle.ID)
		testutil.AssertNoError(t, err)

		if len(list.FixedExpenses) != 1 {
			t.Fatalf("expected 1 fixed expense on the checklist, got %d", len(list.FixedExpenses))
		}
		if list.FixedExpenses[0].RefID != debit.ID {
			t.Errorf("expected the debit expense %d, got %d", debit.ID, list.FixedExpenses[0].RefID)
		}
	})

	t.Run("excludes_transactions_outside_the_interval", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))
		cycle := testutil.CreateTestCycle(t, db,
			testutil.Date(2026, time.January, 1), testutil.Date(2026, time.January, 31), true)

		inside := testutil.CreateTestTransaction(t, db, testutil.Date(2026, time.January, 31), models.PaymentMethodDebit)
		testutil.CreateTestTransaction(t, db, testutil.Date(2026, time.February, 1), models.PaymentMethodDebit)
		testutil.CreateTestTransaction(t, db, testutil.Date(2025, time.December, 31), models.PaymentMethodDebit)
		testutil.CreateTestTransaction(t, db, testutil.Date(2026, time.January, 10), models.PaymentMethodCredit)

		list, err := svc.BuildChecklist(cycle.ID)
		testutil.AssertNoError(t, err)

		if len(list.Transactions) != 1 {
			t.Fatalf("expected 1 transaction on the checklist, got %d", len(list.Transactions))
		}
		if list.Transactions[0].RefID != inside.ID {
			t.Errorf("expected transaction %d, got %d", inside.ID, list.Transactions[0].RefID)
		}
	})

	t.Run("includes_all_cards_and_debts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))
		cycle := testutil.CreateTestCycle(t, db,
			testutil.Date(2026, time.January, 1), testutil.Date(2026, time.January, 31), true)

		testutil.CreateTestCard(t, db)
		testutil.CreateTestCard(t, db)
		withInstallment := testutil.CreateTestDebt(t, db, nil, nil)
		noInstallment := testutil.CreateTestDebt(t, db, nil, nil)
		if err := db.Model(noInstallment).Update("monthly_installment", nil).Error; err != nil {
			t.Fatalf("failed to clear monthly installment: %v", err)
		}

		list, err := svc.BuildChecklist(cycle.ID)
		testutil.AssertNoError(t, err)

		if len(list.Cards) != 2 {
			t.Errorf("expected 2 cards, got %d", len(list.Cards))
		}
		if len(list.Debts) != 2 {
			t.Fatalf("expected 2 debts, got %d", len(list.Debts))
		}
		for _, item := range list.Debts {
			switch item.RefID {
			case withInstallment.ID:
				if item.Value == nil {
					t.Error("expected a value for the debt with a monthly installment")
				}
			case noInstallment.ID:
				if item.Value != nil {
					t.Error("expected a nil value for the debt without a monthly installment")
				}
			}
		}
	})

	t.Run("applies_stored_flags", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))
		cycle := testutil.CreateTestCycle(t, db,
			testutil.Date(2026, time.January, 1), testutil.Date(2026, time.January, 31), true)
		expense := testutil.CreateTestFixedExpense(t, db, cycle.ID, models.PaymentMethodDebit)

		_, err := svc.UpsertEntry(cycle.ID, models.ChecklistItemFixed, expense.ID, true)
		testutil.AssertNoError(t, err)

		list, err := svc.BuildChecklist(cycle.ID)
		testutil.AssertNoError(t, err)

		if len(list.FixedExpenses) != 1 || !list.FixedExpenses[0].Checked {
			t.Error("expected the stored checked flag to be applied")
		}
	})

	t.Run("unknown_cycle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))

		_, err := svc.BuildChecklist(9999)
		testutil.AssertAppError(t, err, "CYCLE_NOT_FOUND")
	})
}

func TestUpsertEntry(t *testing.T) {
	t.Run("second_write_wins_and_keeps_one_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))
		cycle := testutil.CreateTestCycle(t, db,
			testutil.Date(2026, time.January, 1), testutil.Date(2026, time.January, 31), true)

		_, err := svc.UpsertEntry(cycle.ID, models.ChecklistItemCard, 7, true)
		testutil.AssertNoError(t, err)
		_, err = svc.UpsertEntry(cycle.ID, models.ChecklistItemCard, 7, false)
		testutil.AssertNoError(t, err)

		var entries []models.ChecklistEntry
		if err := db.Where("cycle_id = ?", cycle.ID).Find(&entries).Error; err != nil {
			t.Fatalf("failed to load checklist entries: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected exactly 1 stored entry, got %d", len(entries))
		}
		if entries[0].Checked {
			t.Error("expected the second call's value (unchecked) to win")
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))
		cycle := testutil.CreateTestCycle(t, db,
			testutil.Date(2026, time.January, 1), testutil.Date(2026, time.January, 31), true)

		_, err := svc.UpsertEntry(0, models.ChecklistItemCard, 7, true)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.UpsertEntry(cycle.ID, "", 7, true)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.UpsertEntry(cycle.ID, models.ChecklistItemCard, 0, true)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_cycle", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewChecklistService(db, NewCycleService(db))

		_, err := svc.UpsertEntry(9999, models.ChecklistItemCard, 7, true)
		testutil.AssertAppError(t, err, "CYCLE_NOT_FOUND")
	})
}
