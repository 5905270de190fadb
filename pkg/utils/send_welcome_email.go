package utils

import (
	"fmt"
	"time"
)

func SendWelcomeEmail(to, username string) error {
	subject := fmt.Sprintf("Welcome to BudgetBuddy, %s!", username)

	body := fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="en">
	<head>
		<meta charset="UTF-8" />
		<title>Welcome to BudgetBuddy</title>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f6f8; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 12px; overflow: hidden; border-top: 5px solid #2e7d32; }
			.header { background-color: #2e7d32; color: #ffffff; text-align: center; padding: 30px 20px; }
			.content { padding: 30px 35px; color: #333333; line-height: 1.7; }
			.footer { background: #f0f4f1; text-align: center; padding: 20px; font-size: 13px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Welcome to BudgetBuddy 💰</h1>
			</div>
			<div class="content">
				<p>Hey %s,</p>
				<p>Your account is ready. Here is what you can do right away:</p>
				<ul>
					<li>Organize spending into your own categories.</li>
					<li>Record income and expense transactions as they happen.</li>
					<li>Set monthly budgets per category and watch your progress.</li>
					<li>Create savings goals and track how close you are.</li>
				</ul>
				<p>Happy budgeting!</p>
			</div>
			<div class="footer">
				&copy; %d BudgetBuddy — know where your money goes.
			</div>
		</div>
	</body>
	</html>
	`, username, time.Now().Year())

	return SendEmail(to, subject, body)
}
