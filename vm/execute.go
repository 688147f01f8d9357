package vm

import (
	"bytes"
	"fmt"

	"github.com/aicredit/go-aicredit/common/types"
	"github.com/aicredit/go-aicredit/vm/core"
)

func validate(tx *types.Transaction) error {
	if len(tx.Instructions) == 0 {
		return fmt.Errorf("%w: transaction without instructions", core.ErrMalformed)
	}
	if len(tx.Instructions) > types.MaxTransactionInstructions {
		return fmt.Errorf("%w: %d instructions", core.ErrMalformed, len(tx.Instructions))
	}
	for i := range tx.Instructions {
		ix := &tx.Instructions[i]
		if len(ix.Accounts) > types.MaxInstructionAccounts {
			return fmt.Errorf("%w: instruction %d references %d accounts", core.ErrMalformed, i, len(ix.Accounts))
		}
		if len(ix.Data) > types.MaxInstructionData {
			return fmt.Errorf("%w: instruction %d data is %d bytes", core.ErrMalformed, i, len(ix.Data))
		}
	}
	return nil
}

const logTruncated = "Log truncated"

// truncateLogs keeps the first lines that fit into the stored result.
func truncateLogs(rst *types.TransactionResult) {
	if len(rst.Logs) > types.MaxResultLogs {
		rst.Logs = append(rst.Logs[:types.MaxResultLogs-1], logTruncated)
	}
}

// execute transaction on top of the parent cache.
// Changes are written into the parent only if every instruction succeeded.
func (v *VM) execute(
	parent *core.StagedCache,
	slot types.Slot,
	id types.TransactionID,
	tx *types.Transaction,
) (types.TransactionResult, error) {
	var (
		rst = types.TransactionResult{
			ID:     id,
			Slot:   slot,
			Status: types.TransactionSuccess,
		}
		meter = core.NewComputeMeter(v.cfg.ComputeLimit)
		ss    = core.NewStagedCache(parent)
	)
	err := validate(tx)
	for i := 0; err == nil && i < len(tx.Instructions); i++ {
		err = v.invoke(ss, meter, &tx.Instructions[i], &rst.Logs)
	}
	rst.ComputeUnits = meter.Used()
	truncateLogs(&rst)
	if err != nil {
		rst.Status = types.TransactionFailure
		rst.Message = err.Error()
		if len(rst.Message) > types.MaxResultMessage {
			rst.Message = rst.Message[:types.MaxResultMessage]
		}
		return rst, err
	}
	changed, err := ss.Flush(parent)
	if err != nil {
		return rst, fmt.Errorf("%w: %w", core.ErrInternal, err)
	}
	rst.Accounts = changed
	return rst, nil
}

func (v *VM) invoke(ss *core.StagedCache, meter *core.ComputeMeter, ix *types.Instruction, logs *[]string) error {
	program := v.registry.Get(ix.ProgramID)
	if program == nil {
		return fmt.Errorf("%w: %s", core.ErrUnknownProgram, ix.ProgramID)
	}
	*logs = append(*logs, fmt.Sprintf("Program %s invoke [1]", ix.ProgramID))
	before := meter.Used()
	if err := v.run(ss, meter, program, ix, logs); err != nil {
		*logs = append(*logs, fmt.Sprintf("Program %s failed: %v", ix.ProgramID, err))
		return err
	}
	*logs = append(*logs,
		fmt.Sprintf("Program %s consumed %d of %d compute units",
			ix.ProgramID, meter.Used()-before, meter.Limit()-before),
		fmt.Sprintf("Program %s success", ix.ProgramID),
	)
	instructionsTotal.WithLabelValues(ix.ProgramID.String()).Inc()
	return nil
}

type borrowed struct {
	original core.Account
	info     *core.AccountInfo
}

func (v *VM) run(
	ss *core.StagedCache,
	meter *core.ComputeMeter,
	program core.Program,
	ix *types.Instruction,
	logs *[]string,
) error {
	if err := meter.Consume(core.INVOKE); err != nil {
		return err
	}
	var (
		infos  = make([]*core.AccountInfo, 0, len(ix.Accounts))
		unique = make(map[core.Pubkey]int, len(ix.Accounts))
		// borrowed accounts in the order of the first reference
		accounts []borrowed
	)
	for _, meta := range ix.Accounts {
		i, exist := unique[meta.Pubkey]
		if !exist {
			account, err := ss.Get(meta.Pubkey)
			if err != nil {
				return err
			}
			if err := meter.Consume(core.ACCOUNT_ACCESS + core.SizeUnits(core.LOAD, len(account.Data))); err != nil {
				return err
			}
			cp := account.Copy()
			i = len(accounts)
			unique[meta.Pubkey] = i
			accounts = append(accounts, borrowed{
				original: account,
				info: &core.AccountInfo{
					Key:        cp.Key,
					Owner:      cp.Owner,
					Lamports:   cp.Lamports,
					Executable: cp.Executable,
					Data:       cp.Data,
				},
			})
		}
		// account listed several times shares the same view, with the union of permissions
		info := accounts[i].info
		info.IsSigner = info.IsSigner || meta.IsSigner
		info.IsWritable = info.IsWritable || meta.IsWritable
		infos = append(infos, info)
	}

	ctx := core.NewContext(ix.ProgramID, meter, v.logger.Named("program"))
	err := program.Process(ctx, infos, ix.Data)
	*logs = append(*logs, ctx.Logs()...)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, acc := range accounts {
		if bytes.Equal(acc.original.Data, acc.info.Data) {
			continue
		}
		switch {
		case len(acc.original.Data) != len(acc.info.Data):
			return fmt.Errorf("%w: %s from %d to %d bytes",
				core.ErrAccountDataSizeChanged, acc.info.Key, len(acc.original.Data), len(acc.info.Data))
		case !acc.info.IsWritable:
			return fmt.Errorf("%w: %s", core.ErrReadonlyDataModified, acc.info.Key)
		case acc.original.Owner != ix.ProgramID:
			return fmt.Errorf("%w: %s owned by %s", core.ErrExternalAccountDataModified, acc.info.Key, acc.original.Owner)
		}
		if err := meter.Consume(core.SizeUnits(core.UPDATE, len(acc.info.Data))); err != nil {
			return err
		}
		updated := acc.original
		updated.Data = acc.info.Data
		if err := ss.Update(updated); err != nil {
			return fmt.Errorf("%w: %w", core.ErrInternal, err)
		}
	}
	return nil
}
