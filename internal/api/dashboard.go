/**
 * @description
 * This file serves the self-contained HTML dashboard. The page is pure
 * presentation glue: it polls the three JSON endpoints and posts new
 * transactions, imposing no contract on the core beyond the public API.
 */

package api

import "net/http"

// DashboardHandler serves the agent dashboard page.
func (h *LedgerHandlers) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(dashboardHTML))
}

const dashboardHTML = `<html>
<head>
    <title>MTN Mobile Money</title>
    <style>
        body { font-family: Arial; margin: 40px; background: #f0f0f0; }
        .container { max-width: 600px; margin: 0 auto; background: white; padding: 20px; border-radius: 10px; }
        .header { background: #ffcc00; padding: 20px; border-radius: 10px; text-align: center; }
        .balance { background: #4CAF50; color: white; padding: 15px; border-radius: 5px; text-align: center; margin: 15px 0; }
        .form-group { margin: 10px 0; }
        input, select, button { width: 100%; padding: 10px; margin: 5px 0; box-sizing: border-box; }
        button { background: #2196F3; color: white; border: none; padding: 12px; border-radius: 5px; cursor: pointer; }
        .result { padding: 10px; border-radius: 5px; margin: 10px 0; }
        .success { background: #d4edda; color: #155724; }
        .error { background: #f8d7da; color: #721c24; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>MTN Mobile Money Agent</h1>
            <p>Transaction Simulator</p>
        </div>

        <div class="balance">
            <h3>Current Balance</h3>
            <h2 id="balance">GH¢ 0.00</h2>
        </div>

        <div class="form-group">
            <h3>Process Transaction</h3>
            <input type="text" id="phone" placeholder="Customer Phone (0551234567)" value="0551234567">
            <input type="number" id="amount" placeholder="Amount (GH¢)" value="100" step="0.01">
            <select id="type">
                <option value="deposit">Cash Deposit</option>
                <option value="withdraw">Cash Withdrawal</option>
            </select>
            <button onclick="processTransaction()">Process Transaction + SMS</button>
        </div>

        <div id="result"></div>

        <h3>Recent Transactions</h3>
        <div id="transactions"></div>
    </div>

    <script>
        async function loadData() {
            try {
                const balanceResponse = await fetch('/api/balance');
                const balanceData = await balanceResponse.json();
                document.getElementById('balance').textContent = 'GH¢ ' + balanceData.balance.toFixed(2);

                const txnResponse = await fetch('/api/transactions');
                const txnData = await txnResponse.json();

                let html = '';
                txnData.transactions.forEach(txn => {
                    html += '<div style="padding: 8px; border-bottom: 1px solid #eee; font-size: 14px;">' +
                        '<strong>' + txn.phone + '</strong> - GH¢ ' + txn.amount.toFixed(2) + ' - ' + txn.type + '<br>' +
                        '<small>' + txn.date + ' | ' + txn.sms_message + '</small>' +
                        '</div>';
                });
                document.getElementById('transactions').innerHTML = html || 'No transactions yet';
            } catch (error) {
                console.error('Error:', error);
            }
        }

        async function processTransaction() {
            const phone = document.getElementById('phone').value;
            const amount = parseFloat(document.getElementById('amount').value);
            const type = document.getElementById('type').value;

            if (!phone || !amount) {
                alert('Please fill all fields');
                return;
            }

            try {
                const response = await fetch('/api/transaction', {
                    method: 'POST',
                    headers: {'Content-Type': 'application/json'},
                    body: JSON.stringify({
                        customer_phone: phone,
                        amount: amount,
                        transaction_type: type
                    })
                });

                const result = await response.json();
                const resultDiv = document.getElementById('result');

                if (result.success) {
                    resultDiv.className = 'result success';
                    resultDiv.innerHTML =
                        '<h4>Transaction Successful</h4>' +
                        '<p><strong>ID:</strong> ' + result.transaction_id + '</p>' +
                        '<p><strong>Amount:</strong> GH¢ ' + result.amount.toFixed(2) + '</p>' +
                        '<p><strong>New Balance:</strong> GH¢ ' + result.new_balance.toFixed(2) + '</p>' +
                        '<p><strong>SMS:</strong> ' + result.sms_message + '</p>';
                } else {
                    resultDiv.className = 'result error';
                    resultDiv.innerHTML = '<strong>Error:</strong> ' + result.detail;
                }

                loadData();
            } catch (error) {
                document.getElementById('result').innerHTML = '<div class="result error">Network error</div>';
            }
        }

        loadData();
    </script>
</body>
</html>
`
