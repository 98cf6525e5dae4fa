package valset

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ouroboros-network/go-ouroboros/ouro/genesis"
)

func accountWithBalance(balance int64) genesis.Account {
	return genesis.Account{Balance: big.NewInt(balance)}
}

func TestMatchValidatorsAndAccounts(t *testing.T) {
	require := require.New(t)

	aaa := common.HexToAddress("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	bbb := common.HexToAddress("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	accounts := genesis.Accounts{
		aaa: accountWithBalance(10),
		bbb: accountWithBalance(50),
	}

	s := New([]common.Address{aaa, bbb}, accounts)

	require.Equal(2, s.Len())
	require.Equal(big.NewInt(10), s.StakeOf(aaa))
	require.Equal(big.NewInt(50), s.StakeOf(bbb))
	require.Equal(big.NewInt(60), s.TotalStake())
}

func TestValidatorsWithoutStakeAreExcluded(t *testing.T) {
	require := require.New(t)

	aaa := common.HexToAddress("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	bbb := common.HexToAddress("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	// bbb is in the validator list but has no genesis account.
	accounts := genesis.Accounts{
		aaa: accountWithBalance(10),
	}

	s := New([]common.Address{aaa, bbb}, accounts)

	require.Equal(1, s.Len())
	require.Equal(big.NewInt(10), s.StakeOf(aaa))
	require.Nil(s.StakeOf(bbb))
	require.True(s.Contains(aaa))
	require.False(s.Contains(bbb))
}

func TestAddressesAreSorted(t *testing.T) {
	require := require.New(t)

	// Deliberately unsorted input.
	ccc := common.HexToAddress("cccccccccccccccccccccccccccccccccccccccc")
	aaa := common.HexToAddress("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	bbb := common.HexToAddress("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	accounts := genesis.Accounts{
		aaa: accountWithBalance(1),
		bbb: accountWithBalance(2),
		ccc: accountWithBalance(3),
	}

	s := New([]common.Address{ccc, aaa, bbb}, accounts)

	require.Equal([]common.Address{aaa, bbb, ccc}, s.Addresses())

	// IDs follow the sorted order, starting at 1.
	id, ok := s.IDOf(aaa)
	require.True(ok)
	require.EqualValues(1, id)
	id, ok = s.IDOf(ccc)
	require.True(ok)
	require.EqualValues(3, id)
}

func TestThreshold(t *testing.T) {
	// threshold = n/2 + n%2, the cardano calculation
	cases := []struct {
		n, want int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{7, 4},
	}
	for _, c := range cases {
		g := genesis.FakeGenesis(c.n)
		s := FromGenesis(g)
		if got := s.Threshold(); got != c.want {
			t.Fatalf("Threshold() with %d stakeholders = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestWeightsMatchStakes(t *testing.T) {
	require := require.New(t)

	g := genesis.FakeGenesis(3)
	s := FromGenesis(g)

	vv := s.Validators()
	require.NotNil(vv)
	// All fake validators are equally staked, so weights must be equal.
	var first, last = s.Addresses()[0], s.Addresses()[2]
	idFirst, _ := s.IDOf(first)
	idLast, _ := s.IDOf(last)
	require.Equal(vv.Get(idFirst), vv.Get(idLast))
}
